package service

import "errors"

// 业务错误，由 api 层统一映射为 HTTP 状态码
var (
	ErrBadParameter       = errors.New("bad parameter")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrEmailInUse         = errors.New("email already in use")

	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
)
