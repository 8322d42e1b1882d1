package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type successResponseBody struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, "se requiere autorización")
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "error interno del servidor")
}

// respondError traduce los errores de dominio a códigos HTTP. Los errores de
// transporte se reportan como 503 para distinguirlos de los fallos internos.
func respondError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		internalServerErrorResponse(c)
		return
	}

	switch domainErr.Code {
	case domain.CodeValidation:
		errorResponse(c, http.StatusBadRequest, domainErr.Message)
	case domain.CodeNotFound:
		errorResponse(c, http.StatusNotFound, domainErr.Message)
	case domain.CodeConflict:
		errorResponse(c, http.StatusConflict, domainErr.Message)
	case domain.CodeTransport:
		errorResponse(c, http.StatusServiceUnavailable, "el servicio de agenda no está disponible, intente de nuevo")
	default:
		internalServerErrorResponse(c)
	}
}
