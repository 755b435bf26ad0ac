package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/happytailsapp/petcare-booking/internal/audit"
	"github.com/happytailsapp/petcare-booking/internal/httperr"
	"github.com/happytailsapp/petcare-booking/internal/httpresp"
	"github.com/happytailsapp/petcare-booking/internal/middleware"
	"github.com/happytailsapp/petcare-booking/internal/models"
)

type PetHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPetHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PetHandler {
	return &PetHandler{db: db, audit: dispatcher}
}

// Everything except the name is optional and stored verbatim. Weight and
// age are free-form text, not numbers.
type CreatePetRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Breed          string `json:"breed"`
	Size           string `json:"size"`
	Weight         string `json:"weight"`
	Sex            string `json:"sex"`
	Age            string `json:"age"`
	AdditionalInfo string `json:"additional_info"`
}

func (h *PetHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		httperr.BadRequest(c, "Pet name is required")
		return
	}

	pet := models.Pet{
		UserID:         userID,
		Name:           req.Name,
		Type:           req.Type,
		Breed:          req.Breed,
		Size:           req.Size,
		Weight:         req.Weight,
		Sex:            req.Sex,
		Age:            req.Age,
		AdditionalInfo: req.AdditionalInfo,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "Database error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "pet_added",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "Pet added successfully",
		"pet_id":  pet.ID,
	})
}

func (h *PetHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var pets []models.Pet
	if err := h.db.Where("user_id = ?", userID).Find(&pets).Error; err != nil {
		httperr.Internal(c, "Database error")
		return
	}

	httpresp.OK(c, gin.H{
		"pets": pets,
	})
}
