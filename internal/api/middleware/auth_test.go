package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/leon37/EpyTodo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(tokens *service.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), JWTAuth(tokens))
	r.GET("/me", func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "email": claims.Email})
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func msgOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Msg
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := newAuthEngine(service.NewTokenService(testSecret))

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", msgOf(t, w))
}

func TestJWTAuth_AcceptsBearerAndRawToken(t *testing.T) {
	tokens := service.NewTokenService(testSecret)
	r := newAuthEngine(tokens)
	token, err := tokens.Issue(5, "a@x.com")
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		w := doGet(r, header)
		require.Equal(t, http.StatusOK, w.Code, header)

		var body struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(5), body.ID)
		assert.Equal(t, "a@x.com", body.Email)
	}
}

func TestJWTAuth_RejectsInvalidTokens(t *testing.T) {
	tokens := service.NewTokenService(testSecret)
	r := newAuthEngine(tokens)
	token, err := tokens.Issue(5, "a@x.com")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: 5,
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	foreign, err := service.NewTokenService("someone-else").Issue(5, "a@x.com")
	require.NoError(t, err)

	for name, header := range map[string]string{
		"garbage":          "Bearer garbage",
		"expired":          "Bearer " + expired,
		"foreign secret":   "Bearer " + foreign,
		"lowercase prefix": "bearer " + token,
		"double prefix":    "Bearer Bearer " + token,
	} {
		t.Run(name, func(t *testing.T) {
			w := doGet(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Token is not valid", msgOf(t, w))
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newAuthEngine(service.NewTokenService(testSecret))

	w := doGet(r, "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
