package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()

	config := Config{
		SecretKey: []byte("test-secret"),
		Issuer:    "venuebook-test",
		TokenTTL:  ttl,
	}

	return NewService(config, NewBadgerUserRepository(newTestDB(t)), zaptest.NewLogger(t))
}

func draft(name, email, password string) UserDraft {
	return UserDraft{
		UserBase: UserBase{Name: name, Email: email},
		Password: password,
	}
}

func TestService_Register(t *testing.T) {
	svc := newTestService(t, time.Hour)

	user, token, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	assert.Equal(t, UserRoleUser, user.Role)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	claims, err := svc.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, UserRoleUser, claims.Role)
}

func TestService_Register_RoleNeverTakenFromInput(t *testing.T) {
	svc := newTestService(t, time.Hour)

	d := draft("Mallory", "mallory@example.com", "secret1")
	d.Role = UserRoleAdmin

	user, _, err := svc.Register(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, UserRoleUser, user.Role)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, _, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	// Other fields do not matter, only the email does.
	_, _, err = svc.Register(context.Background(), draft("Someone Else", "alice@example.com", "another-pass"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Email uniqueness is case-insensitive.
	_, _, err = svc.Register(context.Background(), draft("Alice Again", "Alice@Example.com", "secret1"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t, time.Hour)

	registered, _, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := svc.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), claims.Subject)
}

func TestService_Login_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, _, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "alice@example.com", "wrong-pass")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestService_ValidateJWT_Expired(t *testing.T) {
	svc := newTestService(t, -time.Hour)

	_, token, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	_, err = svc.ValidateJWT(context.Background(), token)
	assert.Error(t, err)
}

func TestService_ValidateJWT_WrongKey(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, token, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	other := NewService(Config{
		SecretKey: []byte("another-secret"),
		Issuer:    "venuebook-test",
		TokenTTL:  time.Hour,
	}, NewBadgerUserRepository(newTestDB(t)), zaptest.NewLogger(t))

	_, err = other.ValidateJWT(context.Background(), token)
	assert.Error(t, err)
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService(t, time.Hour)

	registered, _, err := svc.Register(context.Background(), draft("Alice", "alice@example.com", "secret1"))
	require.NoError(t, err)

	user, err := svc.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}
