package model

import "time"

// User 映射 user 表
// 注意: Password 存的是 bcrypt 哈希，接口会原样返回 (见 DESIGN.md)
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"password"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Firstname string    `gorm:"type:varchar(100);not null" json:"firstname"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 强制指定表名
func (User) TableName() string {
	return "user"
}
