package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/happytailsapp/petcare-booking/internal/httperr"
	"github.com/happytailsapp/petcare-booking/internal/httpresp"
	"github.com/happytailsapp/petcare-booking/internal/middleware"
	ucBooking "github.com/happytailsapp/petcare-booking/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

type CreateBookingRequest struct {
	PetID       uint   `json:"pet_id"`
	ServiceType string `json:"service_type"`
	BookingDate string `json:"booking_date"` // YYYY-MM-DD
	BookingTime string `json:"booking_time"` // HH:MM
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required booking information")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			UserID:      userID,
			PetID:       req.PetID,
			ServiceType: req.ServiceType,
			Date:        req.BookingDate,
			Time:        req.BookingTime,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_fields"):
			httperr.BadRequest(c, "Missing required booking information")
		case httperr.IsBusiness(err, "pet_not_owned"):
			httperr.Forbidden(c, "Invalid pet ID or pet does not belong to user")
		case httperr.IsBusiness(err, "slot_already_booked"):
			httperr.Conflict(c, "This time slot is already booked")
		default:
			httperr.Internal(c, "Database error")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"message":    "Booking created successfully",
		"booking_id": b.ID,
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Database error")
		return
	}

	httpresp.OK(c, gin.H{
		"bookings": bookings,
	})
}
