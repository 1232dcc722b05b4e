package controllers

import (
	"strconv"

	"hotel-reservation-api/dto"
	"hotel-reservation-api/response"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. A non numeric id answers 404 like an
// unknown route would.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}

// readBody returns the raw request body; a read failure is reported as an invalid payload
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return nil, false
	}
	return body, true
}

func listQuery(c *gin.Context) dto.ListQuery {
	return dto.ParseListQuery(c.Query("page"), c.Query("per_page"))
}
