package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityWindow is a superuser-declared open interval of general
// availability. Bounds are stored in UTC. Withdrawn windows are kept with
// is_available=false for history.
type AvailabilityWindow struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SuperuserID uint `gorm:"index;not null" json:"superuser_id"`
	Superuser   User `gorm:"foreignKey:SuperuserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime   time.Time `gorm:"index;not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *AvailabilityWindow) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
