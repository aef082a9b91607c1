package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/response"
	"github.com/leon37/EpyTodo/internal/model"
	"github.com/leon37/EpyTodo/internal/service"
)

type TodoController struct {
	todos *service.TodoService
}

// NewTodoController 构造函数
func NewTodoController(todos *service.TodoService) *TodoController {
	return &TodoController{todos: todos}
}

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	DueTime     string `json:"due_time" binding:"required" example:"2025-01-01 10:00:00"`
	UserID      int64  `json:"user_id"` // 不传时为当前用户
	Status      string `json:"status" enums:"not started,todo,in progress,done"`
}

// UpdateTodoRequest 出现在请求体里的字段才会更新 (包括空字符串)
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueTime     *string `json:"due_time"`
	Status      *string `json:"status"`
	UserID      *int64  `json:"user_id"`
}

// List 全部 todo
// @Summary 全部 todo
// @Tags Todo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.Todo
// @Router /todos [get]
func (ctrl *TodoController) List(c *gin.Context) {
	todos, err := ctrl.todos.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewTodos(todos))
}

// Get 单个 todo
// @Summary 单个 todo
// @Tags Todo
// @Produce json
// @Security BearerAuth
// @Param id path int true "todo id"
// @Success 200 {object} response.Todo
// @Failure 404 {object} response.Message
// @Router /todos/{id} [get]
func (ctrl *TodoController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	todo, err := ctrl.todos.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewTodo(todo))
}

// Create 创建 todo
// @Summary 创建 todo
// @Description status 默认为 not started，user_id 默认为当前用户
// @Tags Todo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "todo 内容"
// @Success 201 {object} response.Todo
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message "user_id 不存在"
// @Router /todos [post]
func (ctrl *TodoController) Create(c *gin.Context) {
	claims, err := currentUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	todo, err := ctrl.todos.Create(c.Request.Context(), claims.UserID, service.TodoCreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueTime:     req.DueTime,
		UserID:      req.UserID,
		Status:      model.Status(req.Status),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, response.NewTodo(todo))
}

// Update 部分更新 todo
// @Summary 部分更新 todo
// @Tags Todo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "todo id"
// @Param request body UpdateTodoRequest true "待更新字段"
// @Success 200 {object} response.Todo
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /todos/{id} [put]
func (ctrl *TodoController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	todo, err := ctrl.todos.Update(c.Request.Context(), id, service.TodoUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DueTime:     req.DueTime,
		Status:      req.Status,
		UserID:      req.UserID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.NewTodo(todo))
}

// Delete 删除 todo
// @Summary 删除 todo
// @Tags Todo
// @Produce json
// @Security BearerAuth
// @Param id path int true "todo id"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /todos/{id} [delete]
func (ctrl *TodoController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := ctrl.todos.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, deletedMessage(id))
}
