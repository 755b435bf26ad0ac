package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/happytailsapp/petcare-booking/internal/domain/booking"
	"github.com/happytailsapp/petcare-booking/internal/dto"
	"github.com/happytailsapp/petcare-booking/internal/httperr"
	"github.com/happytailsapp/petcare-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Pet (ownership)
// --------------------------------------------------

func (r *BookingGormRepository) GetPetForUser(
	ctx context.Context,
	petID uint,
	userID uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", petID, userID).
		First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking inserts under a transaction that first locks and counts
// bookings occupying the same slot. The unique index on
// (booking_date, booking_time) backstops writers racing past the count.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"booking_date = ? AND booking_time = ?",
				b.BookingDate, b.BookingTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(b).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_already_booked")
	}

	return err
}

// --------------------------------------------------
// Booking (list)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	var rows []dto.BookingListDTO
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(
			"bookings.id",
			"bookings.pet_id",
			"pets.name AS pet_name",
			"bookings.service_type",
			"bookings.booking_date",
			"bookings.booking_time",
			"bookings.status",
			"bookings.created_at",
		).
		Joins("JOIN pets ON pets.id = bookings.pet_id").
		Where("bookings.user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_date = ?", date).
		Pluck("booking_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
