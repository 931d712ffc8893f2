package service_test

import (
	"carehub/internal/domains/booking/mocks"
	"carehub/internal/domains/booking/model"
	gDto "carehub/shared/dto"
	"context"
	"sync"
	"time"

	"go.uber.org/mock/gomock"
)

// bookingStore backs the repository mock with an in-memory table that honours the status guard.
type bookingStore struct {
	mu       sync.Mutex
	bookings map[string]model.Booking
	writes   int
}

func newBookingStore(repo *mocks.MockBooking, seed ...model.Booking) *bookingStore {
	store := &bookingStore{bookings: map[string]model.Booking{}}

	for _, booking := range seed {
		store.bookings[booking.ID] = booking
	}

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			store.mu.Lock()
			defer store.mu.Unlock()

			store.bookings[booking.ID] = booking
			store.writes++

			return nil
		}).
		AnyTimes()

	read := func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
		_, args := filter.GetWhereClause()
		id, _ := args[model.FieldID].(string)

		return store.get(id), nil
	}

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(read).AnyTimes()
	repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).DoAndReturn(read).AnyTimes()

	repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, from model.Status, fields map[string]any) (bool, error) {
			store.mu.Lock()
			defer store.mu.Unlock()

			booking, ok := store.bookings[id]
			if !ok || booking.Status != from {
				return false, nil
			}

			store.bookings[id] = apply(booking, fields)
			store.writes++

			return true, nil
		}).
		AnyTimes()

	return store
}

func (s *bookingStore) get(id string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookings[id]
}

func (s *bookingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

func apply(booking model.Booking, fields map[string]any) model.Booking {
	for column, value := range fields {
		switch column {
		case model.FieldStatus:
			booking.Status = model.Status(value.(string))
		case model.FieldNannyMessage:
			msg := value.(string)
			booking.NannyMessage = &msg
		case model.FieldCancellationReason:
			reason := value.(string)
			booking.CancellationReason = &reason
		case model.FieldCancelledBy:
			by := model.CancelledBy(value.(string))
			booking.CancelledBy = &by
		case model.FieldCompletionNotes:
			notes := value.(string)
			booking.CompletionNotes = &notes
		case "modified_at":
			booking.ModifiedAt = value.(time.Time)
		case "modified_by":
			booking.ModifiedBy = value.(string)
		}
	}

	return booking
}
