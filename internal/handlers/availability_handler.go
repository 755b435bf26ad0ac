package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/happytailsapp/petcare-booking/internal/httperr"
	"github.com/happytailsapp/petcare-booking/internal/httpresp"
	ucBooking "github.com/happytailsapp/petcare-booking/internal/usecase/booking"
)

// Availability is public: prospective customers browse open slots before
// creating an account.
type AvailabilityHandler struct {
	availabilityUC *ucBooking.GetAvailability
}

func NewAvailabilityHandler(availabilityUC *ucBooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	date := c.Query("date")

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "missing_date") {
			httperr.BadRequest(c, "Date parameter is required")
			return
		}
		httperr.Internal(c, "Error fetching slots")
		return
	}

	httpresp.OK(c, gin.H{
		"available_slots": slots,
	})
}
