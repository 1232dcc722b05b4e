package response

import (
	"net/http"

	apperrors "hotel-reservation-api/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ListResponse always carries data, even when the page is empty
type ListResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination describes the page returned by a list endpoint
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// NewPagination computes the page count for total rows split by perPage
func NewPagination(page, perPage int, total int64) Pagination {
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
	}
}

// Success returns 200 with data
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created returns 201 with the new resource
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination returns 200 with one page of items
func SuccessWithPagination(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, ListResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Error translates err into the matching status and envelope
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		ValidationError(c, appErr.Fields)
	case apperrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, Response{Message: appErr.Message})
	case apperrors.ErrCodeConflict:
		c.JSON(http.StatusConflict, Response{Message: appErr.Message})
	case apperrors.ErrCodeDomainRule:
		BadRequest(c, appErr.Message)
	default:
		ServerError(c)
	}
}

// ServerError returns 500 without leaking the cause
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Message: "Internal server error",
	})
}

// NotFound returns 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Message: "Resource not found",
	})
}

// ValidationError returns 400 with the field -> message map
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Errors: fields,
	})
}

// BadRequest returns 400 with a message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Message: message,
	})
}

// TooManyRequests returns 429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{
		Message: "Rate limit exceeded",
	})
}
