package repository

import (
	"context"
	"time"

	"github.com/leon37/EpyTodo/internal/model"
	"gorm.io/gorm"
)

type TodoRepo interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByID(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Todo, error)
	Update(ctx context.Context, id int64, upd TodoUpdate) error
	Delete(ctx context.Context, id int64) error
}

// TodoUpdate 部分更新，每个可更新列一个槽位
type TodoUpdate struct {
	Title       *string
	Description *string
	DueTime     *time.Time
	Status      *model.Status
	UserID      *int64
}

// Empty 是否没有任何待更新字段
func (u TodoUpdate) Empty() bool {
	return len(u.columns()) == 0
}

func (u TodoUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.DueTime != nil {
		cols["due_time"] = *u.DueTime
	}
	if u.Status != nil {
		cols["status"] = string(*u.Status)
	}
	if u.UserID != nil {
		cols["user_id"] = *u.UserID
	}
	return cols
}

type todoRepo struct {
	db *gorm.DB
}

// Create 插入一条记录
func (r *todoRepo) Create(ctx context.Context, todo *model.Todo) error {
	// WithContext 确保请求取消能传递到数据库层
	return translate(r.db.WithContext(ctx).Omit("User").Create(todo).Error)
}

func (r *todoRepo) GetByID(ctx context.Context, id int64) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error; err != nil {
		return nil, translate(err)
	}
	return &todo, nil
}

func (r *todoRepo) List(ctx context.Context) ([]model.Todo, error) {
	todos := []model.Todo{}
	if err := r.db.WithContext(ctx).Order("id").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	todos := []model.Todo{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepo) Update(ctx context.Context, id int64, upd TodoUpdate) error {
	cols := upd.columns()
	if len(cols) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Model(&model.Todo{}).Where("id = ?", id).Updates(cols).Error)
}

func (r *todoRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
