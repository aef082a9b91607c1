package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leon37/EpyTodo/internal/model"
	"github.com/leon37/EpyTodo/internal/repository"
)

// dueTimeLayouts due_time 可接受的输入格式，不带时区的按服务器本地时区解析
var dueTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDueTime 解析 due_time，格式不合法时返回 ErrBadParameter
func ParseDueTime(s string) (time.Time, error) {
	for _, layout := range dueTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: due_time %q", ErrBadParameter, s)
}

// TodoCreateInput 创建参数
type TodoCreateInput struct {
	Title       string
	Description string
	DueTime     string
	UserID      int64        // 0 表示使用当前登录用户
	Status      model.Status // 空表示 not started
}

// TodoUpdateInput 部分更新参数，nil 表示请求体中没有该字段
type TodoUpdateInput struct {
	Title       *string
	Description *string
	DueTime     *string
	Status      *string
	UserID      *int64
}

type TodoService struct {
	store repository.Store
}

func NewTodoService(store repository.Store) *TodoService {
	return &TodoService{store: store}
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.store.Todos().List(ctx)
}

func (s *TodoService) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.store.Todos().GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("get todo %d", id))
	}
	return todo, nil
}

// Create 创建 todo，callerID 为当前登录用户
func (s *TodoService) Create(ctx context.Context, callerID int64, in TodoCreateInput) (*model.Todo, error) {
	// 1. 参数校验 (不访问数据库)
	if in.Title == "" || in.Description == "" || in.DueTime == "" {
		return nil, ErrBadParameter
	}
	status := in.Status
	if status == "" {
		status = model.StatusNotStarted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrBadParameter, status)
	}
	due, err := ParseDueTime(in.DueTime)
	if err != nil {
		return nil, err
	}
	owner := in.UserID
	if owner == 0 {
		owner = callerID
	}

	todo := &model.Todo{
		Title:       in.Title,
		Description: in.Description,
		DueTime:     due,
		Status:      status,
		UserID:      owner,
	}

	// 2. 校验归属用户 + 落库 + 回读
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := ensureUser(ctx, tx, owner); err != nil {
			return err
		}
		if err := tx.Todos().Create(ctx, todo); err != nil {
			return fmt.Errorf("create todo: %w", err)
		}
		created, err := tx.Todos().GetByID(ctx, todo.ID)
		if err != nil {
			return notFoundOr(err, "reload todo")
		}
		todo = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Update 只更新请求中出现的字段
func (s *TodoService) Update(ctx context.Context, id int64, in TodoUpdateInput) (*model.Todo, error) {
	upd := repository.TodoUpdate{
		Title:       in.Title,
		Description: in.Description,
		UserID:      in.UserID,
	}
	if in.Status != nil {
		status := model.Status(*in.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: status %q", ErrBadParameter, status)
		}
		upd.Status = &status
	}
	if in.DueTime != nil {
		due, err := ParseDueTime(*in.DueTime)
		if err != nil {
			return nil, err
		}
		upd.DueTime = &due
	}

	var updated *model.Todo
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Todos().GetByID(ctx, id); err != nil {
			return notFoundOr(err, fmt.Sprintf("get todo %d", id))
		}
		if upd.UserID != nil {
			if err := ensureUser(ctx, tx, *upd.UserID); err != nil {
				return err
			}
		}
		if upd.Empty() {
			return ErrBadParameter
		}
		if err := tx.Todos().Update(ctx, id, upd); err != nil {
			return fmt.Errorf("update todo %d: %w", id, err)
		}
		todo, err := tx.Todos().GetByID(ctx, id)
		if err != nil {
			return notFoundOr(err, "reload todo")
		}
		updated = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Todos().Delete(ctx, id); err != nil {
		return notFoundOr(err, fmt.Sprintf("delete todo %d", id))
	}
	return nil
}

// ensureUser 归属用户必须存在
func ensureUser(ctx context.Context, tx repository.Store, userID int64) error {
	ok, err := tx.Users().Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %d: %w", userID, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
