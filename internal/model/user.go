package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Phone     string         `json:"phone" gorm:"unique;not null;size:32"`
	Username  string         `json:"username" gorm:"not null"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	JoinDate  string         `json:"join_date" gorm:"not null"` // YYYY-MM-DD
	LastLogin *time.Time     `json:"last_login"`
}
