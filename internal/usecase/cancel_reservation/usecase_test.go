package cancel_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingstorage "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

type fakeBookingRepo struct {
	bookings    map[int64]*domain.Booking
	cancelCalls int
	lastReason  string
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingstorage.ErrBookingNotFound
	}
	f.cancelCalls++
	f.lastReason = reason
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

type fakeTurfRepo struct {
	turf         *domain.Turf
	releasedKeys []domain.SlotKey
	releaseMiss  bool
}

func (f *fakeTurfRepo) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return f.turf, nil
}

func (f *fakeTurfRepo) SetSlotReserved(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
	f.releasedKeys = append(f.releasedKeys, key)
	if f.releaseMiss {
		return false, nil
	}
	return true, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:          10,
		UserID:      42,
		TurfID:      7,
		BookingDate: testDate,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Status:      domain.StatusCompleted,
	}
}

func TestExecuteCancelByAuthor(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: activeBooking()}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 1}}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	resp, err := uc.Execute(context.Background(), Request{BookingID: 10, UserID: 42, Reason: "дождь"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Booking.Status)
	require.NotNil(t, resp.Booking.CancellationReason)
	assert.Equal(t, "дождь", *resp.Booking.CancellationReason)

	// Слот освобождён по кортежу бронирования
	require.Len(t, turfs.releasedKeys, 1)
	assert.Equal(t, domain.SlotKey{TurfID: 7, Date: testDate, StartTime: "09:00", EndTime: "10:00"},
		turfs.releasedKeys[0])
}

func TestExecuteCancelByTurfOwner(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: activeBooking()}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 99}}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	resp, err := uc.Execute(context.Background(), Request{BookingID: 10, UserID: 99})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Booking.Status)
}

func TestExecuteCancelAccessDenied(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: activeBooking()}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 1}}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	resp, err := uc.Execute(context.Background(), Request{BookingID: 10, UserID: 500})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, bookings.cancelCalls)
	assert.Empty(t, turfs.releasedKeys)
}

func TestExecuteCancelAlreadyCancelled(t *testing.T) {
	b := activeBooking()
	b.Status = domain.StatusCancelled
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: b}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 1}}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	_, err := uc.Execute(context.Background(), Request{BookingID: 10, UserID: 42})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Zero(t, bookings.cancelCalls)
}

func TestExecuteCancelNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 1}}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	_, err := uc.Execute(context.Background(), Request{BookingID: 10, UserID: 42})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteCancelReasonTooLong(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: activeBooking()}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 1}}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	_, err := uc.Execute(context.Background(), Request{
		BookingID: 10,
		UserID:    42,
		Reason:    strings.Repeat("a", domain.MaxCancellationReasonLength+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteCancelSlotReleaseRetriesTrimmedKey(t *testing.T) {
	// В журнале времена с пробелами; освобождение сначала бьёт по сырому
	// ключу, затем по обрезанному
	b := activeBooking()
	b.StartTime = types.TimeString(" 09:00")
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: b}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 1}, releaseMiss: true}

	uc := NewUseCase(bookings, turfs, nopLogger{})
	resp, err := uc.Execute(context.Background(), Request{BookingID: 10, UserID: 42})

	// Отмена в журнале не откатывается из-за промаха по календарю
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Booking.Status)
	require.Len(t, turfs.releasedKeys, 2)
	assert.Equal(t, types.TimeString(" 09:00"), turfs.releasedKeys[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), turfs.releasedKeys[1].StartTime)
}
