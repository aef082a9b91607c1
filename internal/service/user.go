package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/leon37/EpyTodo/internal/model"
	"github.com/leon37/EpyTodo/internal/repository"
)

// UserRef 用户定位方式: 按 id 或按 email，二选一
type UserRef struct {
	id    int64
	email string
	byID  bool
}

// ByID 按 id 查找
func ByID(id int64) UserRef { return UserRef{id: id, byID: true} }

// ByEmail 按 email 查找
func ByEmail(email string) UserRef { return UserRef{email: email} }

// ParseUserRef 十进制整数按 id 处理，其余一律按 email。
// 纯数字的 email 因此无法通过这个入口查到。
func ParseUserRef(identifier string) UserRef {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return ByID(id)
	}
	return ByEmail(identifier)
}

// ID 返回 id 以及是否为按 id 查找
func (r UserRef) ID() (int64, bool) { return r.id, r.byID }

// Email 返回 email 以及是否为按 email 查找
func (r UserRef) Email() (string, bool) { return r.email, !r.byID }

func (r UserRef) String() string {
	if r.byID {
		return "id:" + strconv.FormatInt(r.id, 10)
	}
	return "email:" + r.email
}

// UserUpdateInput 用户部分更新参数，nil 表示未提供
type UserUpdateInput struct {
	Email     *string
	Name      *string
	Firstname *string
	Password  *string
}

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

// List 返回全部用户
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.Users().List(ctx)
}

// Get 按 id 或 email 查找
func (s *UserService) Get(ctx context.Context, ref UserRef) (*model.User, error) {
	var (
		user *model.User
		err  error
	)
	if id, ok := ref.ID(); ok {
		user, err = s.store.Users().GetByID(ctx, id)
	} else {
		email, _ := ref.Email()
		user, err = s.store.Users().GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, notFoundOr(err, "get user "+ref.String())
	}
	return user, nil
}

// Todos 返回某个用户名下的全部 todo，没有时为空切片
func (s *UserService) Todos(ctx context.Context, userID int64) ([]model.Todo, error) {
	return s.store.Todos().ListByUser(ctx, userID)
}

// Update 部分更新；email 被其他用户占用时返回 ErrEmailInUse
func (s *UserService) Update(ctx context.Context, id int64, in UserUpdateInput) (*model.User, error) {
	upd := repository.UserUpdate{
		Email:     nonEmpty(in.Email),
		Name:      nonEmpty(in.Name),
		Firstname: nonEmpty(in.Firstname),
	}
	if pw := nonEmpty(in.Password); pw != nil {
		hash, err := hashPassword(*pw)
		if err != nil {
			return nil, err
		}
		upd.Password = &hash
	}

	var updated *model.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		users := tx.Users()
		ok, err := users.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check user %d: %w", id, err)
		}
		if !ok {
			return ErrNotFound
		}

		if upd.Email != nil {
			taken, err := users.EmailTaken(ctx, *upd.Email, id)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if taken {
				return ErrEmailInUse
			}
		}

		if upd.Empty() {
			return ErrBadParameter
		}
		if err := users.Update(ctx, id, upd); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailInUse
			}
			return fmt.Errorf("update user %d: %w", id, err)
		}

		updated, err = users.GetByID(ctx, id)
		return notFoundOr(err, "reload user")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除用户，todo 由外键级联删除
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Users().Delete(ctx, id); err != nil {
		return notFoundOr(err, fmt.Sprintf("delete user %d", id))
	}
	return nil
}

// notFoundOr 把仓储层的 ErrNotFound 映射为业务错误，其余错误附带上下文
func notFoundOr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
