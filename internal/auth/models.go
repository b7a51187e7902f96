package auth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/venuebook/venuebook/internal/storage"
	"github.com/venuebook/venuebook/pkg/badgerfx"
)

// userModel represents a user record in the store.
type userModel struct {
	storage.BaseEntity

	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password_hash"`
	Role         UserRole `json:"role"`
}

func newUserModel(user UserDraft, passwordHash string) *userModel {
	return &userModel{
		BaseEntity:   storage.NewBaseEntity(),
		Name:         user.Name,
		Email:        strings.ToLower(user.Email),
		PasswordHash: passwordHash,
		Role:         user.Role,
	}
}

// StorageKey implements badgerfx.Entity.
func (u *userModel) StorageKey(id ...string) string {
	if len(id) > 0 {
		return prefixByID + id[0]
	}

	return prefixByID + u.ID.String()
}

// StorageIndexes implements badgerfx.Entity.
func (u *userModel) StorageIndexes() []string {
	return []string{prefixByEmail + u.Email}
}

// MarshalStorage implements badgerfx.Entity.
func (u *userModel) MarshalStorage() ([]byte, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	return data, nil
}

// UnmarshalStorage implements badgerfx.Entity.
func (u *userModel) UnmarshalStorage(data []byte) error {
	if err := json.Unmarshal(data, u); err != nil {
		return fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return nil
}

var _ badgerfx.Entity = (*userModel)(nil)

func (u *userModel) toDomain() *User {
	if u == nil {
		return nil
	}

	return &User{
		UserBase: UserBase{
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			PasswordHash: u.PasswordHash,
		},
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
