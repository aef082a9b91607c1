package controller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/middleware"
	"github.com/leon37/EpyTodo/internal/service"
)

// bindError 请求体无法解析或缺少必填字段
func bindError(err error) error {
	return fmt.Errorf("%w: %v", service.ErrBadParameter, err)
}

// pathID 解析路径中的数字 id；非数字的 id 不可能存在，按 404 处理
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", service.ErrNotFound, name, raw)
	}
	return id, nil
}

// currentUser 取 JWTAuth 注入的身份；路由没挂中间件时视为 token 无效
func currentUser(c *gin.Context) (*service.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, service.ErrTokenInvalid
	}
	return claims, nil
}
