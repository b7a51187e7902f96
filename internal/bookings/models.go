package bookings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/venuebook/venuebook/internal/storage"
	"github.com/venuebook/venuebook/pkg/badgerfx"
)

// bookingModel represents a booking record in the store.
type bookingModel struct {
	storage.BaseEntity

	Owner        uuid.UUID `json:"owner"`
	FunctionName string    `json:"function_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Venue        string    `json:"venue"`
	Status       Status    `json:"status"`
}

func newBookingModel(draft *BookingDraft) *bookingModel {
	return &bookingModel{
		BaseEntity:   storage.NewBaseEntity(),
		Owner:        draft.Owner,
		FunctionName: draft.FunctionName,
		StartDate:    draft.StartDate,
		EndDate:      draft.EndDate,
		Venue:        draft.Venue,
		Status:       draft.Status,
	}
}

func newBookingUpdateModel(old *bookingModel, draft *BookingDraft) *bookingModel {
	model := newBookingModel(draft)
	model.ID = old.ID
	model.CreatedAt = old.CreatedAt
	model.Touch()

	return model
}

func newBooking(model *bookingModel) *Booking {
	if model == nil {
		return nil
	}

	return &Booking{
		BookingDraft: BookingDraft{
			Owner:        model.Owner,
			FunctionName: model.FunctionName,
			StartDate:    model.StartDate,
			EndDate:      model.EndDate,
			Venue:        model.Venue,
			Status:       model.Status,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// StorageKey implements badgerfx.Entity.
func (b *bookingModel) StorageKey(id ...string) string {
	if len(id) > 0 {
		return prefixByID + id[0]
	}

	return prefixByID + b.ID.String()
}

// StorageIndexes implements badgerfx.Entity. Both indexes are ordered by
// creation time, so reverse iteration drives newest-first listings. The keys
// are derived from CreatedAt and the ID only and therefore stable across
// updates.
func (b *bookingModel) StorageIndexes() []string {
	nano := strconv.FormatInt(b.CreatedAt.UnixNano(), 10)

	return []string{
		prefixByOwner + b.Owner.String() + ":" + nano + ":" + b.ID.String(),
		prefixByCreated + nano + ":" + b.ID.String(),
	}
}

// MarshalStorage implements badgerfx.Entity.
func (b *bookingModel) MarshalStorage() ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking: %w", err)
	}

	return data, nil
}

// UnmarshalStorage implements badgerfx.Entity.
func (b *bookingModel) UnmarshalStorage(data []byte) error {
	if err := json.Unmarshal(data, b); err != nil {
		return fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return nil
}

var _ badgerfx.Entity = (*bookingModel)(nil)
