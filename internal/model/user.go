package model

import "time"

// User stores system accounts. Estado=false blocks login (403) without
// destroying the account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:150;not null"`
	Email        string `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	Estado       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
