package auth

import (
	"time"

	"github.com/google/uuid"
)

type UserBase struct {
	Name         string
	Email        string
	Role         UserRole
	PasswordHash string
}

type UserDraft struct {
	UserBase

	Password string
}

type User struct {
	UserBase

	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
