package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceCategory groups staff eligibility and offerable services for booking
type ServiceCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"not null"`

	gorm.Model
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
