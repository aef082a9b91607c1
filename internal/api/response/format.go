package response

import (
	"time"

	"github.com/leon37/EpyTodo/internal/model"
)

// TimeLayout 所有时间字段的输出格式 (服务器本地时区)
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime 按 TimeLayout 输出本地时间
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(TimeLayout)
}

// User 对外的用户结构，字段顺序与旧接口保持一致
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at"`
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
}

type Todo struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	DueTime     string       `json:"due_time"`
	UserID      int64        `json:"user_id"`
	Status      model.Status `json:"status"`
}

func NewUser(u *model.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: FormatTime(u.CreatedAt),
		Firstname: u.Firstname,
		Name:      u.Name,
	}
}

func NewUsers(users []model.User) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}

func NewTodo(t *model.Todo) Todo {
	return Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   FormatTime(t.CreatedAt),
		DueTime:     FormatTime(t.DueTime),
		UserID:      t.UserID,
		Status:      t.Status,
	}
}

func NewTodos(todos []model.Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for i := range todos {
		out = append(out, NewTodo(&todos[i]))
	}
	return out
}
