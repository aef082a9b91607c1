package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store 聚合所有仓储，并提供事务作用域
type Store interface {
	Users() UserRepo
	Todos() TodoRepo
	// Transaction 在同一个事务里执行 fn，fn 返回 error 时回滚
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore 构造函数
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepo {
	return &userRepo{db: s.db}
}

func (s *gormStore) Todos() TodoRepo {
	return &todoRepo{db: s.db}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
