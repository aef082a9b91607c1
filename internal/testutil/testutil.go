// Package testutil 测试用的数据库与数据构造
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leon37/EpyTodo/internal/config"
	"github.com/leon37/EpyTodo/internal/infrastructure/database"
	"github.com/leon37/EpyTodo/internal/model"
	"github.com/leon37/EpyTodo/internal/repository"
	"gorm.io/gorm"
)

// NewDB 每个测试一个独立的 sqlite 文件，开启外键以验证级联删除
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:   database.DriverSQLite,
		DSN:      dsn,
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewStore 基于 NewDB 的 Store
func NewStore(t testing.TB) (repository.Store, *gorm.DB) {
	t.Helper()
	db := NewDB(t)
	return repository.NewStore(db), db
}

// CreateUser 直接落库一个用户 (密码字段不做哈希)
func CreateUser(t testing.TB, store repository.Store, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: "hash", Name: "Name", Firstname: "First"}
	if err := store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// CountTodos todo 表总行数
func CountTodos(t testing.TB, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Todo{}).Count(&n).Error; err != nil {
		t.Fatalf("count todos: %v", err)
	}
	return n
}
