package models

import "time"

// BookingDate ("2006-01-02") and BookingTime ("15:04") are stored as their
// canonical zero-padded strings, so lexicographic order is chronological.
// The composite unique index enforces one appointment per slot on the
// shared service calendar.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceType string `gorm:"size:100;not null" json:"service_type"`
	BookingDate string `gorm:"size:10;not null;uniqueIndex:idx_bookings_slot" json:"booking_date"`
	BookingTime string `gorm:"size:5;not null;uniqueIndex:idx_bookings_slot" json:"booking_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
