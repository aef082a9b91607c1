package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/leon37/EpyTodo/internal/model"
	"github.com/leon37/EpyTodo/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{service.ErrBadParameter, http.StatusBadRequest, "Bad parameter"},
		{fmt.Errorf("%w: status %q", service.ErrBadParameter, "x"), http.StatusBadRequest, "Bad parameter"},
		{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid Credentials"},
		{service.ErrTokenMissing, http.StatusUnauthorized, "No token, authorization denied"},
		{errors.Join(service.ErrTokenInvalid, errors.New("expired")), http.StatusUnauthorized, "Token is not valid"},
		{service.ErrNotFound, http.StatusNotFound, "Not found"},
		{service.ErrAccountExists, http.StatusConflict, "Account already exists"},
		{service.ErrEmailInUse, http.StatusConflict, "Email already in use"},
		{errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		status, msg := StatusOf(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.msg, msg, tc.err.Error())
	}
}

func TestFormatTime(t *testing.T) {
	local := time.Date(2025, 1, 2, 3, 4, 5, 999, time.Local)
	assert.Equal(t, "2025-01-02 03:04:05", FormatTime(local))

	// 其他时区的时间先转换到本地时区
	utc := local.UTC()
	assert.Equal(t, "2025-01-02 03:04:05", FormatTime(utc))
}

func TestNewTodo(t *testing.T) {
	due := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	created := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)
	got := NewTodo(&model.Todo{
		ID: 7, Title: "T", Description: "D",
		CreatedAt: created, DueTime: due,
		Status: model.StatusTodo, UserID: 3,
	})
	assert.Equal(t, Todo{
		ID: 7, Title: "T", Description: "D",
		CreatedAt: "2024-12-31 23:59:59", DueTime: "2025-01-01 10:00:00",
		UserID: 3, Status: model.StatusTodo,
	}, got)
}

func TestNewUsersKeepsEmptyList(t *testing.T) {
	got := NewUsers(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NotNil(t, NewTodos(nil))
}
