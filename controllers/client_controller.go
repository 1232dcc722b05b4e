package controllers

import (
	"hotel-reservation-api/dto"
	"hotel-reservation-api/response"
	"hotel-reservation-api/services"
	"hotel-reservation-api/validator"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	service *services.ClientService
}

func NewClientController(service *services.ClientService) ClientController {
	return ClientController{service: service}
}

// GetClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        page      query  int  false  "Page number"  default(1)
// @Param        per_page  query  int  false  "Page size"    default(10)
// @Success      200  {object}  response.ListResponse{data=[]dto.ClientDetailResponse}
// @Router       /api/clients [get]
func (ctl ClientController) GetClients(c *gin.Context) {
	page, err := ctl.service.List(c.Request.Context(), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := dto.MapPage(page, dto.NewClientDetailResponse)
	response.SuccessWithPagination(c, out.Items, out.Pagination())
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  response.Response{data=dto.ClientDetailResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/clients/{id} [get]
func (ctl ClientController) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "", dto.NewClientDetailResponse(*client))
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      dto.ClientInput  true  "Client"
// @Success      201     {object}  response.Response{data=dto.ClientDetailResponse}
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /api/clients [post]
func (ctl ClientController) CreateClient(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validator.DecodeClient(body, false)
	if err != nil {
		response.Error(c, err)
		return
	}
	client, err := ctl.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Client created successfully", dto.NewClientDetailResponse(*client))
}

// UpdateClient godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      int              true  "Client ID"
// @Param        client  body      dto.ClientInput  true  "Fields to change"
// @Success      200     {object}  response.Response{data=dto.ClientDetailResponse}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /api/clients/{id} [put]
func (ctl ClientController) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validator.DecodeClient(body, true)
	if err != nil {
		response.Error(c, err)
		return
	}
	client, err := ctl.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Client updated", dto.NewClientDetailResponse(*client))
}

// DeleteClient godoc
// @Summary      Delete a client and its reservations
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/clients/{id} [delete]
func (ctl ClientController) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Client deleted", nil)
}
