package handlers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// WebHandler serves the static site. Pages live at the web root; scripts
// and styles under web/static. Auth checks happen client-side against
// /api/session.
type WebHandler struct {
	webDir string
}

func NewWebHandler(webDir string) *WebHandler {
	return &WebHandler{webDir: webDir}
}

// Pages lists every HTML page the frontend links to.
func (h *WebHandler) Pages() []string {
	return []string{
		"landing.html",
		"login.html",
		"register.html",
		"calendar.html",
		"add_dog.html",
		"my_pets.html",
		"my_bookings.html",
	}
}

func (h *WebHandler) Page(name string) gin.HandlerFunc {
	path := filepath.Join(h.webDir, name)
	return func(c *gin.Context) {
		c.File(path)
	}
}

func (h *WebHandler) Index(c *gin.Context) {
	c.File(filepath.Join(h.webDir, "landing.html"))
}

func (h *WebHandler) StaticDir() string {
	return filepath.Join(h.webDir, "static")
}
