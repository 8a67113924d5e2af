package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);column:password_hash;not null" json:"-"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	LastLoginAt *time.Time `json:"-"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"-"`
}
