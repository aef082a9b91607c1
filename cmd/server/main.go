package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api"
	"github.com/leon37/EpyTodo/internal/api/controller"
	"github.com/leon37/EpyTodo/internal/config"
	"github.com/leon37/EpyTodo/internal/infrastructure/database"
	"github.com/leon37/EpyTodo/internal/repository"
	"github.com/leon37/EpyTodo/internal/service"
)

// @title           EpyTodo API
// @version         1.0
// @description     基于 Go + Gin + GORM 的 todo 管理接口

// @host            localhost:3000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer <token>" 或直接填 token

func main() {
	// 1. 初始化 Logger
	// JSON 格式输出，AddSource 显示文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("EpyTodo 系统启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	if conf.Server.Mode != "" {
		gin.SetMode(conf.Server.Mode)
	}

	// 2. Infra Initialization
	db, err := database.NewConnection(conf.Database) // 这里会自动建表
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	// 3. Layer Wiring (依赖注入)
	store := repository.NewStore(db)
	tokens := service.NewTokenService(conf.JWT.Secret)

	ctrls := api.Controllers{
		Auth: controller.NewAuthController(service.NewAuthService(store, tokens)),
		User: controller.NewUserController(service.NewUserService(store)),
		Todo: controller.NewTodoController(service.NewTodoService(store)),
	}

	// 4. Server Start
	r := api.NewRouter(conf.Cors.AllowOrigins)
	api.RegisterRoutes(r, tokens, ctrls)

	slog.Info("EpyTodo Web Server 启动中", "port", conf.Server.Port, "driver", conf.Database.Driver)
	if err := r.Run(":" + conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
		os.Exit(1)
	}
}
