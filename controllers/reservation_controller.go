package controllers

import (
	"hotel-reservation-api/dto"
	"hotel-reservation-api/response"
	"hotel-reservation-api/services"
	"hotel-reservation-api/validator"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) ReservationController {
	return ReservationController{service: service}
}

// GetReservations godoc
// @Summary      List reservations, newest first
// @Tags         reservations
// @Produce      json
// @Param        status     query  string  false  "Status"  Enums(confirmed, cancelled, completed)
// @Param        client_id  query  int     false  "Client ID"
// @Param        page       query  int     false  "Page number"  default(1)
// @Param        per_page   query  int     false  "Page size"    default(10)
// @Success      200  {object}  response.ListResponse{data=[]dto.ReservationResponse}
// @Router       /api/reservations [get]
func (ctl ReservationController) GetReservations(c *gin.Context) {
	filter := dto.NewReservationFilter(c.Query("status"), c.Query("client_id"))

	page, err := ctl.service.List(c.Request.Context(), filter, listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := dto.MapPage(page, dto.NewReservationResponse)
	response.SuccessWithPagination(c, out.Items, out.Pagination())
}

// GetReservation godoc
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      int  true  "Reservation ID"
// @Success      200  {object}  response.Response{data=dto.ReservationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/reservations/{id} [get]
func (ctl ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "", dto.NewReservationResponse(*reservation))
}

// CreateReservation godoc
// @Summary      Book a room
// @Description  total_price defaults to nights x nightly_price, status to confirmed.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservation  body      dto.ReservationInput  true  "Reservation"
// @Success      201          {object}  response.Response{data=dto.ReservationResponse}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /api/reservations [post]
func (ctl ReservationController) CreateReservation(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validator.DecodeReservation(body, false)
	if err != nil {
		response.Error(c, err)
		return
	}
	reservation, err := ctl.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Reservation created successfully", dto.NewReservationResponse(*reservation))
}

// UpdateReservation godoc
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id           path      int                   true  "Reservation ID"
// @Param        reservation  body      dto.ReservationInput  true  "Fields to change"
// @Success      200          {object}  response.Response{data=dto.ReservationResponse}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /api/reservations/{id} [put]
func (ctl ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validator.DecodeReservation(body, true)
	if err != nil {
		response.Error(c, err)
		return
	}
	reservation, err := ctl.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Reservation updated", dto.NewReservationResponse(*reservation))
}

// CancelReservation godoc
// @Summary      Cancel a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      int  true  "Reservation ID"
// @Success      200  {object}  response.Response{data=dto.ReservationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/reservations/{id}/cancel [put]
func (ctl ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := ctl.service.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Reservation cancelled", dto.NewReservationResponse(*reservation))
}

// DeleteReservation godoc
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      int  true  "Reservation ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/reservations/{id} [delete]
func (ctl ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Reservation deleted", nil)
}
