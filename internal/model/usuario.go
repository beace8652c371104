package model

import "github.com/google/uuid"

// Usuario is a dashboard user. Passwords are stored as bcrypt hashes;
// plaintext never touches the database.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:60;not null"`
	Email        string    `gorm:"size:120;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:120;not null"`
	Role         string    `gorm:"size:30;not null;default:'viewer'"`
	Active       bool      `gorm:"not null;default:true"`
}

func (Usuario) TableName() string { return "users" }
