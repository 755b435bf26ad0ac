package booking

import (
	"context"

	"github.com/happytailsapp/petcare-booking/internal/dto"
	"github.com/happytailsapp/petcare-booking/internal/models"
)

type Repository interface {
	// -------- Pet (ownership) --------
	GetPetForUser(
		ctx context.Context,
		petID uint,
		userID uint,
	) (*models.Pet, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (list) --------
	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]dto.BookingListDTO, error)

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)
}
