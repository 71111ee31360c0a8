package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/opportunityradar/radar/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorMapsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRespondErrorMapsInvalidInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, domain.ErrInvalidInput)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondErrorDefaultsToInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, assertUnwrappedError{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type assertUnwrappedError struct{}

func (assertUnwrappedError) Error() string { return "boom" }
