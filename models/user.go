package models

import (
	"time"
)

// UserType defines allowed account types in the system
type UserType string

const (
	TypeVendor   UserType = "vendor"
	TypeSupplier UserType = "supplier"
	TypeConsumer UserType = "consumer"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	UserType     UserType  `json:"user_type" gorm:"not null;default:'consumer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
