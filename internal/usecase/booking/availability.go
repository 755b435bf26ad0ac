package booking

import (
	"context"

	domain "github.com/happytailsapp/petcare-booking/internal/domain/booking"
	"github.com/happytailsapp/petcare-booking/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute subtracts the booked times for the given date from the daily
// slot template, preserving template order. The date is matched as an
// opaque string: a value no booking was ever stored under simply returns
// the full template.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, domain.ClosingHour-domain.OpeningHour)
	for _, slot := range domain.SlotTemplate() {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available, nil
}
