package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff positions
const (
	PositionBeautician  = 1
	PositionMasseuse    = 2
	PositionNailStylist = 3
	PositionHairdresser = 4
)

var positionNames = map[int]string{
	PositionBeautician:  "beautician",
	PositionMasseuse:    "masseuse",
	PositionNailStylist: "nail stylist",
	PositionHairdresser: "hairdresser",
}

type Staff struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName   string    `gorm:"not null"`
	LastName    string    `gorm:"not null"`
	Phone       string    `gorm:"type:varchar(9);not null"`
	Position    int       `gorm:"not null"`
	Description string    `gorm:"type:text"`

	Categories []ServiceCategory `gorm:"many2many:staff_categories"`

	gorm.Model
}

func (Staff) TableName() string { return "staff" }

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s Staff) PositionName() string {
	return positionNames[s.Position]
}
