package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovalogics-art/booking-service/internal/domain"
	bookingRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
	"github.com/inovalogics-art/booking-service/internal/service/bookings/models"
	"github.com/inovalogics-art/booking-service/pkg/ptr"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

type fakeBookingRepository struct {
	byID       map[string]*domain.Booking
	listResult []*domain.Booking
	counts     map[domain.BookingStatus]int
	slotTaken  bool

	lastUpdate *domain.BookingUpdate
	deleted    []string
}

func (f *fakeBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return f.listResult, nil
}

func (f *fakeBookingRepository) Update(ctx context.Context, id string, upd domain.BookingUpdate) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	f.lastUpdate = &upd

	updated := *b
	if upd.Status != nil {
		updated.Status = *upd.Status
	}
	if upd.Notes != nil {
		updated.Notes = upd.Notes
	}
	if upd.ScheduledDate != nil {
		updated.ScheduledDate = *upd.ScheduledDate
	}
	if upd.ScheduledTime != nil {
		updated.ScheduledTime = *upd.ScheduledTime
	}
	if upd.MeetingType != nil {
		updated.MeetingType = *upd.MeetingType
	}
	f.byID[id] = &updated
	return &updated, nil
}

func (f *fakeBookingRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	return f.counts, nil
}

func (f *fakeBookingRepository) ExistsActiveAt(ctx context.Context, date time.Time, slot types.TimeString, excludeID *string) (bool, error) {
	return f.slotTaken, nil
}

type fakeScheduleRepository struct {
	blocked *domain.BlockedDate
}

func (f *fakeScheduleRepository) GetBlockedDateByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error) {
	if f.blocked == nil {
		return nil, scheduleRepo.ErrBlockedDateNotFound
	}
	return f.blocked, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeBookingRepository, schedule *fakeScheduleRepository, now time.Time) *Service {
	svc := NewService(repo, schedule, fakeTxManager{}, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		ScheduledDate: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "10:00:00",
		Timezone:      domain.DefaultTimezone,
		MeetingType:   domain.MeetingVideo,
		Status:        domain.StatusPending,
	}
}

func TestService_Update(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("Status Transition Allowed", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			Status: ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("Status Transition Rejected", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			Status: ptr.Ptr("completed"),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.lastUpdate, "repository must not be written on rejected transition")
	})

	t.Run("Terminal Status Immutable", func(t *testing.T) {
		completed := pendingBooking("b-1")
		completed.Status = domain.StatusCompleted
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": completed}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			Status: ptr.Ptr("pending"),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Same Status Is Idempotent", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			Status: ptr.Ptr("pending"),
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			Status: ptr.Ptr("archived"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Empty Update Rejected", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepository{byID: map[string]*domain.Booking{}}, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "missing", &models.UpdateBookingRequest{
			Status: ptr.Ptr("confirmed"),
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("Reschedule To Past Date", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			ScheduledDate: ptr.Ptr("2026-01-10"),
			ScheduledTime: ptr.Ptr("11:00"),
		})
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("Reschedule To Blocked Date", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{
			blocked: &domain.BlockedDate{ID: "bd-1", Date: time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)},
		}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			ScheduledDate: ptr.Ptr("2026-01-21"),
			ScheduledTime: ptr.Ptr("11:00"),
		})
		assert.ErrorIs(t, err, ErrDateBlocked)
	})

	t.Run("Reschedule To Taken Slot", func(t *testing.T) {
		repo := &fakeBookingRepository{
			byID:      map[string]*domain.Booking{"b-1": pendingBooking("b-1")},
			slotTaken: true,
		}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			ScheduledDate: ptr.Ptr("2026-01-21"),
			ScheduledTime: ptr.Ptr("11:00"),
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("Reschedule Success Normalizes Time", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
			ScheduledDate: ptr.Ptr("2026-01-21"),
			ScheduledTime: ptr.Ptr("11:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-21", resp.ScheduledDate)
		assert.Equal(t, "11:00:00", resp.ScheduledTime)
	})
}

func TestService_Cancel(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("Default Reason", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.Cancel(context.Background(), "b-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, resp.Notes)
		assert.Equal(t, domain.DefaultCancellationNote, *resp.Notes)
	})

	t.Run("Custom Reason", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.Cancel(context.Background(), "b-1", &models.CancelBookingRequest{
			Reason: ptr.Ptr("Client asked to reschedule next month"),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Notes)
		assert.Equal(t, "Client asked to reschedule next month", *resp.Notes)
	})

	t.Run("Cancel Completed Rejected", func(t *testing.T) {
		completed := pendingBooking("b-1")
		completed.Status = domain.StatusCompleted
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": completed}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		_, err := svc.Cancel(context.Background(), "b-1", nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Cancel Cancelled Is Idempotent", func(t *testing.T) {
		cancelled := pendingBooking("b-1")
		cancelled.Status = domain.StatusCancelled
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": cancelled}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.Cancel(context.Background(), "b-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepository{byID: map[string]*domain.Booking{}}, &fakeScheduleRepository{}, now)

		_, err := svc.Cancel(context.Background(), "missing", nil)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_List(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("Invalid Status Filter", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepository{}, &fakeScheduleRepository{}, now)

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Invalid Date Filter", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepository{}, &fakeScheduleRepository{}, now)

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Date: ptr.Ptr("15.01.2026")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Returns All With Total", func(t *testing.T) {
		repo := &fakeBookingRepository{listResult: []*domain.Booking{
			pendingBooking("b-1"),
			pendingBooking("b-2"),
		}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Bookings, 2)
		assert.Equal(t, "2026-01-20", resp.Bookings[0].ScheduledDate)
	})
}

func TestService_Stats(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepository{counts: map[domain.BookingStatus]int{
		domain.StatusPending:   3,
		domain.StatusConfirmed: 2,
		domain.StatusCompleted: 5,
		domain.StatusCancelled: 1,
		domain.StatusNoShow:    2,
	}}
	svc := newTestService(repo, &fakeScheduleRepository{}, now)

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	// no_show не выделяется отдельным полем, но входит в общий счетчик
	assert.Equal(t, 13, resp.Total)
	assert.Equal(t, 3, resp.Pending)
	assert.Equal(t, 2, resp.Confirmed)
	assert.Equal(t, 5, resp.Completed)
	assert.Equal(t, 1, resp.Cancelled)
}

func TestService_Delete(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("Deletes Existing", func(t *testing.T) {
		repo := &fakeBookingRepository{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := newTestService(repo, &fakeScheduleRepository{}, now)

		require.NoError(t, svc.Delete(context.Background(), "b-1"))
		assert.Equal(t, []string{"b-1"}, repo.deleted)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepository{byID: map[string]*domain.Booking{}}, &fakeScheduleRepository{}, now)
		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrBookingNotFound)
	})
}
