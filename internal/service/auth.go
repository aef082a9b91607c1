package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/leon37/EpyTodo/internal/model"
	"github.com/leon37/EpyTodo/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost bcrypt 代价因子
const PasswordCost = 10

type AuthService struct {
	store  repository.Store
	tokens *TokenService
}

func NewAuthService(store repository.Store, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email     string
	Name      string
	Firstname string
	Password  string
}

// Register 注册逻辑，成功后直接返回新用户的 token
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Email == "" || in.Name == "" || in.Firstname == "" || in.Password == "" {
		return "", ErrBadParameter
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Email:     in.Email,
		Password:  hash,
		Name:      in.Name,
		Firstname: in.Firstname,
	}

	// 查重 + 落库放在同一个事务里
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		_, err := tx.Users().GetByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return ErrAccountExists
		case !errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("check email: %w", err)
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			// 并发注册时由唯一索引兜底
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrAccountExists
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID, user.Email)
}

// Login 登录逻辑，返回 Token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrBadParameter
	}

	// 1. 查用户: 不存在时返回 400 而不是 404，避免暴露账号是否存在
	user, err := s.store.Users().GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrBadParameter
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	// 2. 比对密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// 3. 生成 JWT
	return s.tokens.Issue(user.ID, user.Email)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrBadParameter
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
