package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venuebook/venuebook/internal/auth"
	"go.uber.org/zap/zaptest"
)

type fakeNotifier struct {
	calls []Booking
}

func (f *fakeNotifier) BookingStatusChanged(_ context.Context, booking *Booking) {
	f.calls = append(f.calls, *booking)
}

func newTestService(t *testing.T) (*Service, *fakeNotifier) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	notifier := &fakeNotifier{}

	return NewService(NewRepository(db), notifier, zaptest.NewLogger(t)), notifier
}

func testDraft(name string) BookingDraft {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	return BookingDraft{
		FunctionName: name,
		StartDate:    start,
		EndDate:      start.Add(2 * time.Hour),
		Venue:        "Grand Hall",
	}
}

func user() Actor {
	return Actor{ID: uuid.New(), Role: auth.UserRoleUser}
}

func admin() Actor {
	return Actor{ID: uuid.New(), Role: auth.UserRoleAdmin}
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.UUID{}, booking.ID)
	assert.Equal(t, alice.ID, booking.Owner)
	assert.Equal(t, StatusPending, booking.Status)
	assert.Equal(t, "Gala", booking.FunctionName)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestService_Create_TrimsFields(t *testing.T) {
	svc, _ := newTestService(t)

	draft := testDraft("  Gala  ")
	draft.Venue = " Grand Hall "

	booking, err := svc.Create(context.Background(), user(), draft)
	require.NoError(t, err)

	assert.Equal(t, "Gala", booking.FunctionName)
	assert.Equal(t, "Grand Hall", booking.Venue)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	actor := user()

	tests := []struct {
		name   string
		mutate func(*BookingDraft)
	}{
		{"blank function name", func(d *BookingDraft) { d.FunctionName = "   " }},
		{"blank venue", func(d *BookingDraft) { d.Venue = "" }},
		{"zero start date", func(d *BookingDraft) { d.StartDate = time.Time{} }},
		{"end before start", func(d *BookingDraft) { d.EndDate = d.StartDate.Add(-time.Hour) }},
		{"end equals start", func(d *BookingDraft) { d.EndDate = d.StartDate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := testDraft("Gala")
			tt.mutate(&draft)

			_, err := svc.Create(context.Background(), actor, draft)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_ListOwn(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()
	bob := user()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := svc.Create(context.Background(), alice, testDraft(name))
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), bob, testDraft("Bob's"))
	require.NoError(t, err)

	bookings, err := svc.ListOwn(context.Background(), alice)
	require.NoError(t, err)

	names := lo.Map(bookings, func(b Booking, _ int) string { return b.FunctionName })
	assert.Equal(t, []string{"Third", "Second", "First"}, names)
}

func TestService_ListAll(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()
	bob := user()

	_, err := svc.Create(context.Background(), alice, testDraft("Alice's"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, testDraft("Bob's"))
	require.NoError(t, err)

	bookings, err := svc.ListAll(context.Background(), admin())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// Newest-created-first, across owners.
	assert.Equal(t, "Bob's", bookings[0].FunctionName)
	assert.Equal(t, "Alice's", bookings[1].FunctionName)

	_, err = svc.ListAll(context.Background(), alice)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	venue := "Riverside Pavilion"
	updated, err := svc.Update(context.Background(), alice, booking.ID, BookingPatch{Venue: &venue})
	require.NoError(t, err)

	assert.Equal(t, "Riverside Pavilion", updated.Venue)
	assert.Equal(t, "Gala", updated.FunctionName)
	assert.Equal(t, booking.StartDate, updated.StartDate)
	assert.Equal(t, booking.CreatedAt, updated.CreatedAt)
}

func TestService_Update_MergedDateInvariant(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	// Supplying only endDate is checked against the stored startDate.
	badEnd := booking.StartDate.Add(-time.Hour)
	_, err = svc.Update(context.Background(), alice, booking.ID, BookingPatch{EndDate: &badEnd})
	assert.ErrorIs(t, err, ErrValidation)

	// Supplying only startDate is checked against the stored endDate.
	badStart := booking.EndDate.Add(time.Hour)
	_, err = svc.Update(context.Background(), alice, booking.ID, BookingPatch{StartDate: &badStart})
	assert.ErrorIs(t, err, ErrValidation)

	goodStart := booking.StartDate.Add(-time.Hour)
	updated, err := svc.Update(context.Background(), alice, booking.ID, BookingPatch{StartDate: &goodStart})
	require.NoError(t, err)
	assert.Equal(t, goodStart, updated.StartDate)
}

func TestService_Update_GuardOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()
	bob := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	// Missing record wins over everything else.
	_, err = svc.Update(context.Background(), bob, uuid.New(), BookingPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	// Ownership wins over payload validation: an empty patch from a
	// non-owner is a 403-class error, not a 400-class one.
	_, err = svc.Update(context.Background(), bob, booking.ID, BookingPatch{})
	assert.ErrorIs(t, err, ErrForbidden)

	// Only the owner sees the payload error.
	_, err = svc.Update(context.Background(), alice, booking.ID, BookingPatch{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_ValidationAbortsWrite(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	blank := "  "
	_, err = svc.Update(context.Background(), alice, booking.ID, BookingPatch{FunctionName: &blank})
	require.ErrorIs(t, err, ErrValidation)

	stored, err := svc.ListOwn(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Gala", stored[0].FunctionName)
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService(t)
	alice := user()
	bob := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), bob, booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), alice, booking.ID)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), alice, booking.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	bookings, err := svc.ListOwn(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestService_ChangeStatus(t *testing.T) {
	svc, notifier := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(context.Background(), admin(), booking.ID, StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, updated.Status)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, booking.ID, notifier.calls[0].ID)
	assert.Equal(t, StatusConfirmed, notifier.calls[0].Status)
}

func TestService_ChangeStatus_InvalidTarget(t *testing.T) {
	svc, notifier := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	for _, status := range []Status{StatusPending, "archived", ""} {
		_, err = svc.ChangeStatus(context.Background(), admin(), booking.ID, status)
		assert.ErrorIs(t, err, ErrValidation)
	}

	assert.Empty(t, notifier.calls)
}

func TestService_ChangeStatus_AdminOnly(t *testing.T) {
	svc, notifier := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), alice, booking.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, notifier.calls)
}

func TestService_ChangeStatus_NotFound(t *testing.T) {
	svc, notifier := newTestService(t)

	_, err := svc.ChangeStatus(context.Background(), admin(), uuid.New(), StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, notifier.calls)
}

func TestService_ChangeStatus_ReTransition(t *testing.T) {
	svc, notifier := newTestService(t)
	alice := user()

	booking, err := svc.Create(context.Background(), alice, testDraft("Gala"))
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), admin(), booking.ID, StatusConfirmed)
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(context.Background(), admin(), booking.ID, StatusRejected)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, updated.Status)
	require.Len(t, notifier.calls, 2)
	assert.Equal(t, StatusRejected, notifier.calls[1].Status)
}
