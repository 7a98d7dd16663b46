package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondDomainError maps a domain error onto the HTTP taxonomy:
// invalid input -> 400, not found -> 404, invalid state -> 400, anything
// else -> 500 with a generic message (details go to the server log only).
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, ErrInvalidState):
		RespondError(c, http.StatusBadRequest, err)
	default:
		ErrorLogger.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
