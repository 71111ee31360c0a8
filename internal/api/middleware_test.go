package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) { c.Status(200) })

	c.Request = httptest.NewRequest("GET", "/x", nil)
	engine.HandleContext(c)

	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDPreservesCallerSupplied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) { c.Status(200) })

	c.Request = httptest.NewRequest("GET", "/x", nil)
	c.Request.Header.Set(requestIDHeader, "caller-supplied-id")
	engine.HandleContext(c)

	assert.Equal(t, "caller-supplied-id", w.Header().Get(requestIDHeader))
}
