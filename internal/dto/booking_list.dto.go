package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	PetID       uint      `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	ServiceType string    `json:"service_type"`
	BookingDate string    `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
