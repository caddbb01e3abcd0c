package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses and payment statuses are plain strings on the model;
// the allowed values and transitions live in internal/domain/booking.
type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	WindowID string             `gorm:"type:uuid;index;not null" json:"window_id"`
	Window   AvailabilityWindow `gorm:"foreignKey:WindowID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// denormalized from the window at creation time for query efficiency
	SuperuserID uint `gorm:"index;not null" json:"superuser_id"`

	ScheduledStart  time.Time `gorm:"index;not null" json:"scheduled_start"`
	ScheduledEnd    time.Time `gorm:"not null" json:"scheduled_end"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	Status          string     `gorm:"size:20;default:'pending'" json:"status"`
	RejectionReason string     `gorm:"size:500" json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	UserName  string `gorm:"size:100;not null" json:"user_name"`
	UserEmail string `gorm:"size:100;not null" json:"user_email"`
	UserPhone string `gorm:"size:20" json:"user_phone,omitempty"`

	// consultation profile, opaque to the scheduling core
	BirthDate         string `gorm:"size:20" json:"birth_date,omitempty"`
	BirthTime         string `gorm:"size:10" json:"birth_time,omitempty"`
	BirthPlace        string `gorm:"size:200" json:"birth_place,omitempty"`
	ConsultationTopic string `gorm:"size:200" json:"consultation_topic,omitempty"`
	AdditionalNotes   string `gorm:"size:2000" json:"additional_notes,omitempty"`

	PaymentIntentID string `gorm:"size:100;index" json:"payment_intent_id,omitempty"`
	PaymentStatus   string `gorm:"size:30;default:'none'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
