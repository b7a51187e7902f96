package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/venuebook/venuebook/pkg/badgerfx"
)

const (
	prefix = "booking:"

	prefixByID      = prefix + "id:"
	prefixByOwner   = prefix + "owner:"
	prefixByCreated = prefix + "created:"
)

// Repository implements the booking store on BadgerDB.
type Repository struct {
	db    *badger.DB
	store *badgerfx.Repository[*bookingModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db:    db,
		store: badgerfx.NewRepository(func() *bookingModel { return new(bookingModel) }),
	}
}

// Create persists a new booking.
func (r *Repository) Create(_ context.Context, draft *BookingDraft) (*Booking, error) {
	model := newBookingModel(draft)

	err := r.db.Update(func(txn *badger.Txn) error {
		return r.store.Write(txn, model)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return newBooking(model), nil
}

// ListByOwner retrieves all bookings of one owner, newest-created-first.
func (r *Repository) ListByOwner(_ context.Context, owner uuid.UUID) ([]Booking, error) {
	return r.listByIndex(prefixByOwner + owner.String() + ":")
}

// List retrieves all bookings across all owners, newest-created-first.
func (r *Repository) List(_ context.Context) ([]Booking, error) {
	return r.listByIndex(prefixByCreated)
}

// Update applies the updater to the stored booking inside a single
// transaction. The updater is where the caller runs its ownership guard and
// field validation; any error it returns aborts the write untouched.
func (r *Repository) Update(_ context.Context, id uuid.UUID, updater func(*Booking) error) (*Booking, error) {
	var updated *bookingModel

	err := r.db.Update(func(txn *badger.Txn) error {
		old, err := r.get(txn, id)
		if err != nil {
			return err
		}

		booking := newBooking(old)

		if updErr := updater(booking); updErr != nil {
			return updErr
		}

		if booking.Owner != old.Owner {
			return fmt.Errorf("cannot change booking owner (old=%s new=%s)", old.Owner, booking.Owner)
		}

		updated = newBookingUpdateModel(old, &booking.BookingDraft)

		return r.store.Write(txn, updated)
	})

	if err != nil {
		return nil, err
	}

	return newBooking(updated), nil
}

// Delete removes a booking permanently. The guard runs after the fetch and
// may veto the deletion, typically with an ownership check.
func (r *Repository) Delete(_ context.Context, id uuid.UUID, guard func(*Booking) error) error {
	return r.db.Update(func(txn *badger.Txn) error {
		booking, err := r.get(txn, id)
		if err != nil {
			return err
		}

		if guard != nil {
			if guardErr := guard(newBooking(booking)); guardErr != nil {
				return guardErr
			}
		}

		if delErr := r.store.DeleteIndexes(txn, booking); delErr != nil {
			return delErr
		}

		if delErr := txn.Delete([]byte(booking.StorageKey())); delErr != nil {
			return fmt.Errorf("failed to delete booking: %w", delErr)
		}

		return nil
	})
}

func (r *Repository) listByIndex(indexPrefix string) ([]Booking, error) {
	var bookings []Booking

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 10
		opts.Reverse = true

		models, err := r.store.ListByIndex(txn, indexPrefix, opts)
		if err != nil {
			return err
		}

		bookings = lo.Map(models, func(model *bookingModel, _ int) Booking {
			return *newBooking(model)
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (r *Repository) get(txn *badger.Txn, id uuid.UUID) (*bookingModel, error) {
	booking, err := r.store.Read(txn, id.String())
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id.String())
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}
