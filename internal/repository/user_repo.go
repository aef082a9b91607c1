package repository

import (
	"context"
	"errors"

	"github.com/leon37/EpyTodo/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ErrDuplicate 违反唯一约束
var ErrDuplicate = errors.New("duplicate key")

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// EmailTaken 判断 email 是否已被 id 以外的用户使用
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	Update(ctx context.Context, id int64, upd UserUpdate) error
	Delete(ctx context.Context, id int64) error
}

// UserUpdate 部分更新，nil 表示不修改该列
type UserUpdate struct {
	Email     *string
	Name      *string
	Firstname *string
	Password  *string // 已经是哈希
}

// Empty 是否没有任何待更新字段
func (u UserUpdate) Empty() bool {
	return len(u.columns()) == 0
}

func (u UserUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Firstname != nil {
		cols["firstname"] = *u.Firstname
	}
	if u.Password != nil {
		cols["password"] = *u.Password
	}
	return cols
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	// 没找到时 gorm 返回 ErrRecordNotFound，统一转成 ErrNotFound
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepo) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) Update(ctx context.Context, id int64, upd UserUpdate) error {
	cols := upd.columns()
	if len(cols) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(cols)
	return translate(res.Error)
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate 把 gorm 的错误收敛为仓储层错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrDuplicate, err)
	default:
		return err
	}
}
