package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/venuebook/venuebook/pkg/badgerfx"
)

const (
	prefix = "user:"

	prefixByID    = prefix + "id:"
	prefixByEmail = prefix + "email:"
)

// badgerUserRepository implements the user store using BadgerDB
type badgerUserRepository struct {
	db    *badger.DB
	store *badgerfx.Repository[*userModel]
}

// NewBadgerUserRepository creates a new BadgerDB-based user repository
func NewBadgerUserRepository(db *badger.DB) *badgerUserRepository {
	return &badgerUserRepository{
		db:    db,
		store: badgerfx.NewRepository(func() *userModel { return new(userModel) }),
	}
}

// GetByID retrieves a user by ID
func (r *badgerUserRepository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	var user *userModel
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = r.get(txn, id)
		return err
	})

	if err != nil {
		return nil, err
	}

	return user.toDomain(), nil
}

// GetByEmail retrieves a user via the email index
func (r *badgerUserRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	var user *userModel
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = r.getByEmail(txn, email)
		return err
	})

	if err != nil {
		return nil, err
	}

	return user.toDomain(), nil
}

// Create persists a new user; the email must not already be registered
func (r *badgerUserRepository) Create(_ context.Context, user UserDraft, passwordHash string) (*User, error) {
	model := newUserModel(user, passwordHash)

	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := r.getByEmail(txn, model.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, ErrUserNotFound) {
			return err
		}

		return r.store.Write(txn, model)
	})

	if err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

func (r *badgerUserRepository) get(txn *badger.Txn, id uuid.UUID) (*userModel, error) {
	user, err := r.store.Read(txn, id.String())
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *badgerUserRepository) getByEmail(txn *badger.Txn, email string) (*userModel, error) {
	user, err := r.store.ReadByIndex(txn, prefixByEmail+strings.ToLower(email))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
