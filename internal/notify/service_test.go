package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/bookings"
	"go.uber.org/zap/zaptest"
)

type fakeSender struct {
	msgs []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.msgs = append(f.msgs, msg)
	return f.err
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *auth.Service, *fakeSender) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := auth.NewService(auth.Config{
		SecretKey: []byte("test-secret"),
		Issuer:    "venuebook-test",
		TokenTTL:  time.Hour,
	}, auth.NewBadgerUserRepository(db), zaptest.NewLogger(t))

	sender := &fakeSender{}

	return NewDispatcher(users, sender, zaptest.NewLogger(t)), users, sender
}

func ownedBooking(owner uuid.UUID, status bookings.Status) *bookings.Booking {
	booking := testBooking(status)
	booking.Owner = owner

	return booking
}

func TestDispatcher_BookingStatusChanged(t *testing.T) {
	dispatcher, users, sender := newTestDispatcher(t)

	owner, _, err := users.Register(context.Background(), auth.UserDraft{
		UserBase: auth.UserBase{Name: "Alice", Email: "alice@example.com"},
		Password: "secret1",
	})
	require.NoError(t, err)

	dispatcher.BookingStatusChanged(context.Background(), ownedBooking(owner.ID, bookings.StatusConfirmed))

	require.Len(t, sender.msgs, 1)
	msg := sender.msgs[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Alice", msg.ToName)
	assert.Equal(t, "Booking Confirmed", msg.Subject)
	assert.Contains(t, msg.HTML, "Wedding Reception")
}

func TestDispatcher_RejectedSubject(t *testing.T) {
	dispatcher, users, sender := newTestDispatcher(t)

	owner, _, err := users.Register(context.Background(), auth.UserDraft{
		UserBase: auth.UserBase{Name: "Bob", Email: "bob@example.com"},
		Password: "secret1",
	})
	require.NoError(t, err)

	dispatcher.BookingStatusChanged(context.Background(), ownedBooking(owner.ID, bookings.StatusRejected))

	require.Len(t, sender.msgs, 1)
	assert.Equal(t, "Booking Rejected", sender.msgs[0].Subject)
}

func TestDispatcher_UnknownOwnerSkipsSend(t *testing.T) {
	dispatcher, _, sender := newTestDispatcher(t)

	dispatcher.BookingStatusChanged(context.Background(), ownedBooking(uuid.New(), bookings.StatusConfirmed))

	assert.Empty(t, sender.msgs)
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	dispatcher, users, sender := newTestDispatcher(t)
	sender.err = errors.New("smtp unreachable")

	owner, _, err := users.Register(context.Background(), auth.UserDraft{
		UserBase: auth.UserBase{Name: "Alice", Email: "alice@example.com"},
		Password: "secret1",
	})
	require.NoError(t, err)

	// Must not panic or retry, a single failed attempt is the end of it.
	dispatcher.BookingStatusChanged(context.Background(), ownedBooking(owner.ID, bookings.StatusConfirmed))

	assert.Len(t, sender.msgs, 1)
}
