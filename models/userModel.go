package models

import (
	"time"
)

// User represents a login identity in the system
type User struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Username    string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Password    string    `gorm:"size:255;not null;column:password" json:"-"`
	IsSuperuser bool      `gorm:"not null;default:false;column:is_superuser" json:"is_superuser"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserDetail is the public projection of a User returned by the API.
type UserDetail struct {
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Token is the response body of a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
