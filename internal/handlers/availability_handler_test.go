package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/happytailsapp/petcare-booking/internal/dto"
	"github.com/happytailsapp/petcare-booking/internal/models"
	ucBooking "github.com/happytailsapp/petcare-booking/internal/usecase/booking"
)

// stubBookingRepo serves a canned set of booked times per date.
type stubBookingRepo struct {
	booked map[string][]string
}

func (s *stubBookingRepo) GetPetForUser(context.Context, uint, uint) (*models.Pet, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBookingRepo) CreateBooking(context.Context, *models.Booking) error {
	return nil
}

func (s *stubBookingRepo) ListBookingsForUser(context.Context, uint) ([]dto.BookingListDTO, error) {
	return nil, nil
}

func (s *stubBookingRepo) ListBookedTimes(_ context.Context, date string) ([]string, error) {
	return s.booked[date], nil
}

func newAvailabilityRouter(repo *stubBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(ucBooking.NewGetAvailability(repo))

	r := gin.New()
	r.GET("/api/available_slots", h.List)
	return r
}

func TestAvailableSlots_MissingDate(t *testing.T) {
	r := newAvailabilityRouter(&stubBookingRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/available_slots", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date parameter is required")
}

func TestAvailableSlots_BookedTimeExcluded(t *testing.T) {
	r := newAvailabilityRouter(&stubBookingRepo{
		booked: map[string][]string{
			"2024-05-01": {"11:00"},
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/available_slots?date=2024-05-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.NotContains(t, w.Body.String(), `"11:00"`)
	assert.Contains(t, w.Body.String(), `"09:00"`)
	assert.Contains(t, w.Body.String(), `"16:00"`)
}

func TestAvailableSlots_EmptyDay(t *testing.T) {
	r := newAvailabilityRouter(&stubBookingRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/available_slots?date=2024-06-15", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(
		t,
		w.Body.String(),
		`["09:00","10:00","11:00","12:00","13:00","14:00","15:00","16:00"]`,
	)
}
