package controllers

import (
	"hotel-reservation-api/dto"
	"hotel-reservation-api/response"
	"hotel-reservation-api/services"
	"hotel-reservation-api/validator"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) RoomController {
	return RoomController{service: service}
}

// GetRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        type       query  string  false  "Room type"  Enums(Simple, Double, Suite)
// @Param        available  query  string  false  "true or false"
// @Param        page       query  int     false  "Page number"  default(1)
// @Param        per_page   query  int     false  "Page size"    default(10)
// @Success      200  {object}  response.ListResponse{data=[]dto.RoomResponse}
// @Router       /api/rooms [get]
func (ctl RoomController) GetRooms(c *gin.Context) {
	available, hasAvailable := c.GetQuery("available")
	filter := dto.NewRoomFilter(c.Query("type"), available, hasAvailable)

	page, err := ctl.service.List(c.Request.Context(), filter, listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := dto.MapPage(page, dto.NewRoomResponse)
	response.SuccessWithPagination(c, out.Items, out.Pagination())
}

// GetRoom godoc
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room ID"
// @Success      200  {object}  response.Response{data=dto.RoomResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/rooms/{id} [get]
func (ctl RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := ctl.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "", dto.NewRoomResponse(*room))
}

// CreateRoom godoc
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        room  body      dto.RoomInput  true  "Room"
// @Success      201   {object}  response.Response{data=dto.RoomResponse}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /api/rooms [post]
func (ctl RoomController) CreateRoom(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validator.DecodeRoom(body, false)
	if err != nil {
		response.Error(c, err)
		return
	}
	room, err := ctl.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Room created successfully", dto.NewRoomResponse(*room))
}

// UpdateRoom godoc
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Room ID"
// @Param        room  body      dto.RoomInput  true  "Fields to change"
// @Success      200   {object}  response.Response{data=dto.RoomResponse}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /api/rooms/{id} [put]
func (ctl RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	in, err := validator.DecodeRoom(body, true)
	if err != nil {
		response.Error(c, err)
		return
	}
	room, err := ctl.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Room updated", dto.NewRoomResponse(*room))
}

// DeleteRoom godoc
// @Summary      Delete a room
// @Description  Refused with 409 while reservations reference the room.
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/rooms/{id} [delete]
func (ctl RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Room deleted", nil)
}
