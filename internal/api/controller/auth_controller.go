package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/response"
	"github.com/leon37/EpyTodo/internal/service"
)

// AuthController 处理注册和登录
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ==========================================
// Handlers
// ==========================================

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户，密码 bcrypt 加密存储，返回 token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册参数"
// @Success 201 {object} response.TokenResponse
// @Failure 400 {object} response.Message "Bad parameter"
// @Failure 409 {object} response.Message "Account already exists"
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	// 2. 业务逻辑
	token, err := ctrl.authService.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		Name:      req.Name,
		Firstname: req.Firstname,
		Password:  req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	// 3. 成功响应
	slog.Info("User registered", "email", req.Email)
	response.Success(c, http.StatusCreated, response.TokenResponse{Token: token})
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验账号密码，颁发 JWT Token (1 小时有效)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.Message "Bad parameter"
// @Failure 401 {object} response.Message "Invalid Credentials"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("Login failed", "email", req.Email, "err", err)
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, response.TokenResponse{Token: token})
}
