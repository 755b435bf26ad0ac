package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/happytailsapp/petcare-booking/internal/audit"
	"github.com/happytailsapp/petcare-booking/internal/config"
	"github.com/happytailsapp/petcare-booking/internal/httperr"
	"github.com/happytailsapp/petcare-booking/internal/httpresp"
	"github.com/happytailsapp/petcare-booking/internal/models"
	"github.com/happytailsapp/petcare-booking/internal/session"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions session.Store
	config   *config.Config
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	sessions session.Store,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:       db,
		sessions: sessions,
		config:   cfg,
		audit:    dispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "Email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Database error")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// Two registrations can race past the count above; the unique
		// index on email settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "Email already registered")
			return
		}
		httperr.Internal(c, "Database error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "User registered successfully",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "Email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "Invalid credentials")
			return
		}
		httperr.Internal(c, "Database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), session.Data{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		httperr.Internal(c, "Failed to create session")
		return
	}

	h.setSessionCookie(c, token, int(h.config.SessionTTL.Seconds()))

	httpresp.OK(c, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// Logout clears the session unconditionally: a missing or already-dead
// token still yields success.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}

	h.setSessionCookie(c, "", -1)

	httpresp.OK(c, gin.H{
		"message": "Logout successful",
	})
}

func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		httperr.Unauthorized(c, "No active session")
		return
	}

	data, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			httperr.Unauthorized(c, "No active session")
			return
		}
		httperr.Internal(c, "Session store error")
		return
	}

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":    data.UserID,
			"email": data.Email,
		},
	})
}

// --------- Cookie ---------

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)
}
