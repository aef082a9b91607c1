package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/controller"
	"github.com/leon37/EpyTodo/internal/api/middleware"
	"github.com/leon37/EpyTodo/internal/api/response"
	"github.com/leon37/EpyTodo/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leon37/EpyTodo/docs"
)

// Controllers 路由依赖的全部 controller
type Controllers struct {
	Auth *controller.AuthController
	User *controller.UserController
	Todo *controller.TodoController
}

// NewRouter 创建 gin 引擎并挂好全局中间件
func NewRouter(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.Cors(corsOrigins),
		middleware.ErrorHandler(),
	)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, tokens *service.TokenService, ctrls Controllers) {
	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, response.Message{Msg: response.MsgWelcome})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", ctrls.Auth.Register)
	r.POST("/login", ctrls.Auth.Login)

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(tokens))
	{
		protected.GET("/users", ctrls.User.List)
		protected.GET("/users/:identifier", ctrls.User.Get)
		protected.PUT("/users/:id", ctrls.User.Update)
		protected.DELETE("/users/:id", ctrls.User.Delete)
		protected.GET("/user", ctrls.User.Me)
		protected.GET("/user/todos", ctrls.User.MyTodos)

		protected.GET("/todos", ctrls.Todo.List)
		protected.GET("/todos/:id", ctrls.Todo.Get)
		protected.POST("/todos", ctrls.Todo.Create)
		protected.PUT("/todos/:id", ctrls.Todo.Update)
		protected.DELETE("/todos/:id", ctrls.Todo.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
	})
}
