package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/happytailsapp/petcare-booking/internal/audit"
	"github.com/happytailsapp/petcare-booking/internal/config"
	"github.com/happytailsapp/petcare-booking/internal/handlers"
	infraRepo "github.com/happytailsapp/petcare-booking/internal/infra/repository"
	"github.com/happytailsapp/petcare-booking/internal/middleware"
	"github.com/happytailsapp/petcare-booking/internal/session"
	ucBooking "github.com/happytailsapp/petcare-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, cfg *config.Config) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES — BOOKINGS
	// ------------------------------
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, sessions, cfg, auditDispatcher)
	petHandler := handlers.NewPetHandler(db, auditDispatcher)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listBookingsUC)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	webHandler := handlers.NewWebHandler(cfg.WebDir)

	// ------------------------------
	// WEB (STATIC PAGES)
	// ------------------------------
	r.GET("/", webHandler.Index)
	for _, page := range webHandler.Pages() {
		r.GET("/"+page, webHandler.Page(page))
	}
	r.Static("/static", webHandler.StaticDir())

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		// Auth / session
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/session", authHandler.Session)

		// Public availability
		api.GET("/available_slots", availabilityHandler.List)

		// Session-scoped
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(sessions))
		{
			secured.POST("/pets", petHandler.Create)
			secured.GET("/pets", petHandler.List)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
		}
	}
}
