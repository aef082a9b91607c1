package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(), ErrorHandler())
	r.GET("/bad", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("%w: title", service.ErrBadParameter))
	})
	r.GET("/db", func(c *gin.Context) {
		_ = c.Error(errors.New("dial tcp: connection refused"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/ok", func(c *gin.Context) {
		_ = c.Error(service.ErrNotFound)
		c.JSON(http.StatusOK, gin.H{"msg": "already written"})
	})

	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/bad", http.StatusBadRequest, "Bad parameter"},
		{"/db", http.StatusInternalServerError, "Internal server error"},
		{"/panic", http.StatusInternalServerError, "Internal server error"},
		{"/ok", http.StatusOK, "already written"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.status, w.Code, tc.path)
		assert.Equal(t, tc.msg, msgOf(t, w), tc.path)
		assert.NotContains(t, w.Body.String(), "connection refused")
	}
}

func TestCors(t *testing.T) {
	r := gin.New()
	r.Use(Cors([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
