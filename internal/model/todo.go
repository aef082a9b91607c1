package model

import "time"

// Status todo 状态，对应 schema 中的枚举
type Status string

const (
	StatusNotStarted Status = "not started"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
)

// Statuses 全部合法状态 (与 schema 顺序一致)
var Statuses = []Status{StatusNotStarted, StatusTodo, StatusInProgress, StatusDone}

// Valid 判断 s 是否为合法状态
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Todo 映射 todo 表
type Todo struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	DueTime     time.Time `gorm:"not null" json:"due_time"`
	Status      Status    `gorm:"type:varchar(20);not null;default:'not started';check:chk_todo_status,status IN ('not started','todo','in progress','done')" json:"status"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`

	// 删除 user 时级联删除其 todo
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Todo) TableName() string {
	return "todo"
}
