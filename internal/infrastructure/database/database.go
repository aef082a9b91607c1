package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/leon37/EpyTodo/internal/config"
	"github.com/leon37/EpyTodo/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewConnection 按配置打开数据库并自动建表
func NewConnection(conf config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(conf.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate 自动建表 (user 必须先于 todo，外键依赖)
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Todo{}); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}

func dialectorFor(conf config.DatabaseConfig) (gorm.Dialector, error) {
	switch conf.Driver {
	case DriverMySQL, "":
		return mysql.Open(conf.MySQLDSN()), nil
	case DriverPostgres:
		if conf.DSN == "" {
			return nil, fmt.Errorf("database.dsn is required for driver %q", conf.Driver)
		}
		return postgres.Open(conf.DSN), nil
	case DriverSQLite:
		dsn := conf.DSN
		if dsn == "" {
			dsn = "epytodo.db?_pragma=foreign_keys(1)"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
