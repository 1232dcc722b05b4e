package controllers

import (
	"hotel-reservation-api/response"
	"hotel-reservation-api/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) StatsController {
	return StatsController{service: service}
}

// GetStats godoc
// @Summary      Aggregate counts
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response{data=dto.Stats}
// @Router       /api/stats [get]
func (ctl StatsController) GetStats(c *gin.Context) {
	stats, err := ctl.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "", stats)
}
