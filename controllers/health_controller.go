package controllers

import (
	"net/http"

	"hotel-reservation-api/response"
	"hotel-reservation-api/services"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the index endpoint
const APIVersion = "1.0"

type HealthController struct {
	service *services.HealthService
}

func NewHealthController(service *services.HealthService) HealthController {
	return HealthController{service: service}
}

// Index lists the available endpoints
func (ctl HealthController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the hotel reservation API",
		"version": APIVersion,
		"endpoints": gin.H{
			"clients":      "/api/clients",
			"rooms":        "/api/rooms",
			"reservations": "/api/reservations",
			"stats":        "/api/stats",
			"events":       "/ws",
			"docs":         "/swagger/index.html",
		},
	})
}

func (ctl HealthController) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// Health godoc
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (ctl HealthController) Health(c *gin.Context) {
	status, healthy := ctl.service.Check(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Message: "Service unavailable",
			Data:    status,
		})
		return
	}
	response.Success(c, "", status)
}
