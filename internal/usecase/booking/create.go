package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/happytailsapp/petcare-booking/internal/audit"
	domain "github.com/happytailsapp/petcare-booking/internal/domain/booking"
	"github.com/happytailsapp/petcare-booking/internal/httperr"
	"github.com/happytailsapp/petcare-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	PetID       uint
	ServiceType string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

type CreateBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateBooking(
	repo domain.Repository,
	audit Auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.PetID == 0 || in.ServiceType == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// A pet belonging to another account and a pet that does not exist
	// both collapse to the same forbidden outcome.
	if _, err := uc.repo.GetPetForUser(ctx, in.PetID, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("pet_not_owned")
		}
		return nil, err
	}

	b := &models.Booking{
		UserID:      in.UserID,
		PetID:       in.PetID,
		ServiceType: in.ServiceType,
		BookingDate: in.Date,
		BookingTime: in.Time,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_already_booked") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"booking_date": in.Date,
					"booking_time": in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
