package models

import (
	"time"

	"gorm.io/gorm"
)

type AppRole string

const (
	RoleAdmin AppRole = "admin"
	RoleUser  AppRole = "user"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"uniqueIndex;not null"`
	Password     string  `gorm:"not null"`
	FirstName    string  `gorm:"not null"`
	LastName     string  `gorm:"not null"`
	Role         AppRole `gorm:"type:varchar(20);default:user"`
	Active       bool    `gorm:"default:true"`
	RefreshToken string  `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
