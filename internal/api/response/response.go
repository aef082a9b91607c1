package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/service"
)

// 对外固定的提示信息
const (
	MsgBadParameter       = "Bad parameter"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgNoToken            = "No token, authorization denied"
	MsgTokenInvalid       = "Token is not valid"
	MsgNotFound           = "Not found"
	MsgAccountExists      = "Account already exists"
	MsgEmailInUse         = "Email already in use"
	MsgInternal           = "Internal server error"
	MsgWelcome            = "Welcome to EpyTodo API"
)

// Message 所有非数据响应的统一结构
type Message struct {
	Msg string `json:"msg"`
}

// TokenResponse 注册/登录返回
type TokenResponse struct {
	Token string `json:"token"`
}

// Success 成功响应，data 原样输出
func Success(c *gin.Context, httpStatus int, data interface{}) {
	c.JSON(httpStatus, data)
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Message{Msg: msg})
}

// errorTable 业务错误 -> HTTP
var errorTable = []struct {
	err    error
	status int
	msg    string
}{
	{service.ErrBadParameter, http.StatusBadRequest, MsgBadParameter},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
	{service.ErrTokenMissing, http.StatusUnauthorized, MsgNoToken},
	{service.ErrTokenInvalid, http.StatusUnauthorized, MsgTokenInvalid},
	{service.ErrNotFound, http.StatusNotFound, MsgNotFound},
	{service.ErrAccountExists, http.StatusConflict, MsgAccountExists},
	{service.ErrEmailInUse, http.StatusConflict, MsgEmailInUse},
}

// StatusOf 返回 err 对应的状态码和提示，未知错误一律 500
func StatusOf(err error) (int, string) {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.status, e.msg
		}
	}
	return http.StatusInternalServerError, MsgInternal
}
