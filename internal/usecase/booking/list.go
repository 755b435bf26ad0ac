package booking

import (
	"context"
	"sort"

	domain "github.com/happytailsapp/petcare-booking/internal/domain/booking"
	"github.com/happytailsapp/petcare-booking/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns the account's bookings in chronological order. Dates and
// times are canonical zero-padded strings, so string comparison suffices.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	rows, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BookingDate != rows[j].BookingDate {
			return rows[i].BookingDate < rows[j].BookingDate
		}
		return rows[i].BookingTime < rows[j].BookingTime
	})

	return rows, nil
}
