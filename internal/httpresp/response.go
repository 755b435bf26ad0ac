package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, withSuccess(body))
}

func Created(c *gin.Context, body gin.H) {
	c.JSON(http.StatusCreated, withSuccess(body))
}

func withSuccess(body gin.H) gin.H {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	return body
}
