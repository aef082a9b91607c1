package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Database DatabaseConfig `mapstructure:"database"`
	Cors     CorsConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

type CorsConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// 配置项与环境变量的对应关系
// CORS_ALLOW_ORIGINS 用逗号分隔，由 viper 的 decode hook 拆成列表
var envBindings = map[string]string{
	"server.port":        "PORT",
	"server.mode":        "GIN_MODE",
	"jwt.secret":         "SECRET",
	"database.driver":    "DB_DRIVER",
	"database.dsn":       "DATABASE_DSN",
	"database.host":      "MYSQL_HOST",
	"database.port":      "MYSQL_PORT",
	"database.user":      "MYSQL_USER",
	"database.password":  "MYSQL_ROOT_PASSWORD",
	"database.name":      "MYSQL_DATABASE",
	"database.log_level": "DB_LOG_LEVEL",
	"cors.allow_origins": "CORS_ALLOW_ORIGINS",
}

// LoadConfig 读取配置: .env -> 环境变量 -> config.yaml (可选) -> 默认值
func LoadConfig() (*Config, error) {
	// .env 不存在时忽略，容器里一般直接注入环境变量
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.name", "epytodo")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("cors.allow_origins", []string{"*"})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is not set (SECRET)")
	}
	return &cfg, nil
}

// MySQLDSN 优先使用显式 DSN，否则由 host/port/user 拼装
func (d DatabaseConfig) MySQLDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	mc := mysql.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(d.Host, d.Port)
	mc.DBName = d.Name
	// 时间统一按服务器本地时区读写
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}
