package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation links a client, one staff member and a date/time slot.
// Each submission attaches exactly one service and one category, even
// though the schema allows several.
type Reservation struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null"`
	StaffID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Date     time.Time `gorm:"not null"`
	Time     string    `gorm:"type:varchar(5)"`

	Client     User              `gorm:"foreignKey:ClientID"`
	Staff      Staff             `gorm:"foreignKey:StaffID"`
	Services   []Service         `gorm:"many2many:reservation_services"`
	Categories []ServiceCategory `gorm:"many2many:reservation_categories"`

	gorm.Model
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
