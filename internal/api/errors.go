package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opportunityradar/radar/internal/domain"
)

// ErrorResponse is the JSON body every non-2xx response returns, the same
// {error, code} shape the teacher's debug handlers use.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps a domain or binding error to a status code and writes
// an ErrorResponse, aborting the request.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_INPUT"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "CONFLICT"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
	}
	c.Abort()
}

func badRequest(c *gin.Context, msg, code string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: code})
	c.Abort()
}
