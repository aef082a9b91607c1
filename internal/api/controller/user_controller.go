package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/response"
	"github.com/leon37/EpyTodo/internal/service"
)

type UserController struct {
	users *service.UserService
}

// NewUserController 构造函数
func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

// UpdateUserRequest 所有字段可选，空字符串视为未提供
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	Firstname *string `json:"firstname"`
	Password  *string `json:"password"`
}

// List 获取全部用户
// @Summary 获取全部用户
// @Description 注意：返回结果包含密码哈希
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.User
// @Router /users [get]
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewUsers(users))
}

// Get 按 id 或 email 获取用户
// @Summary 按 id 或 email 获取用户
// @Description identifier 为十进制整数时按 id 查询，否则按 email 查询
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param identifier path string true "用户 id 或 email"
// @Success 200 {object} response.User
// @Failure 404 {object} response.Message
// @Router /users/{identifier} [get]
func (ctrl *UserController) Get(c *gin.Context) {
	ref := service.ParseUserRef(c.Param("identifier"))
	user, err := ctrl.users.Get(c.Request.Context(), ref)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewUser(user))
}

// Me 当前登录用户
// @Summary 当前登录用户
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.User
// @Failure 404 {object} response.Message "token 签发后用户已被删除"
// @Router /user [get]
func (ctrl *UserController) Me(c *gin.Context) {
	claims, err := currentUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	user, err := ctrl.users.Get(c.Request.Context(), service.ByID(claims.UserID))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewUser(user))
}

// MyTodos 当前用户的 todo
// @Summary 当前用户的 todo
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.Todo
// @Router /user/todos [get]
func (ctrl *UserController) MyTodos(c *gin.Context) {
	claims, err := currentUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	todos, err := ctrl.users.Todos(c.Request.Context(), claims.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewTodos(todos))
}

// Update 部分更新用户
// @Summary 部分更新用户
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 id"
// @Param request body UpdateUserRequest true "待更新字段"
// @Success 200 {object} response.User
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message "Email already in use"
// @Router /users/{id} [put]
func (ctrl *UserController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := ctrl.users.Update(c.Request.Context(), id, service.UserUpdateInput{
		Email:     req.Email,
		Name:      req.Name,
		Firstname: req.Firstname,
		Password:  req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewUser(user))
}

// Delete 删除用户 (级联删除其 todo)
// @Summary 删除用户
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 id"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /users/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := ctrl.users.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, deletedMessage(id))
}

func deletedMessage(id int64) response.Message {
	return response.Message{Msg: fmt.Sprintf("Successfully deleted record number: %d", id)}
}
