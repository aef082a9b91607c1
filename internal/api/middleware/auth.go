package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/response"
	"github.com/leon37/EpyTodo/internal/service"
)

const claimsKey = "claims"

const bearerPrefix = "Bearer "

// JWTAuth 校验 Authorization 头，支持 "Bearer <token>" 和裸 token 两种写法
func JWTAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			status, msg := response.StatusOf(service.ErrTokenMissing)
			response.Error(c, status, msg)
			return
		}

		// 前缀大小写敏感，"bearer xxx" 会被当成裸 token 去校验
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			slog.Debug("token rejected", "request_id", RequestIDFrom(c), "err", err)
			status, msg := response.StatusOf(service.ErrTokenInvalid)
			response.Error(c, status, msg)
			return
		}

		// 提取 Claims 并注入 Context
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom 取出 JWTAuth 注入的身份信息
func ClaimsFrom(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}
