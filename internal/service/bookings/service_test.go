package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TurfService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	byUser      []*domain.Booking
	byTurf      []*domain.Booking
	unsynced    []*domain.Booking
	lastStatus  *domain.BookingStatus
	lastFilter  domain.TurfBookingsFilter
	lastAuditAt *time.Time
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatus = status
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.byTurf, nil
}

func (f *fakeBookingRepo) FindUnsynced(ctx context.Context, turfID int64, date *time.Time) ([]*domain.Booking, error) {
	f.lastAuditAt = date
	return f.unsynced, nil
}

type fakeTurfRepo struct {
	turf *domain.Turf
	err  error
}

func (f *fakeTurfRepo) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.turf, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:            10,
		UserID:        42,
		TurfID:        7,
		BookingDate:   testDate,
		StartTime:     "09:00",
		EndTime:       "10:00",
		PlayerCount:   10,
		TotalPrice:    1500,
		Status:        domain.StatusCompleted,
		PaymentStatus: domain.PaymentCompleted,
	}
}

func TestGetByIDAccess(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{10: sampleBooking()}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 99}}
	svc := NewService(repo, turfs, nopLogger{})

	// Автор бронирования
	got, err := svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "2024-06-10", got.BookingDate)
	assert.Equal(t, "09:00", got.StartTime)

	// Владелец площадки
	_, err = svc.GetByID(context.Background(), 10, 99)
	assert.NoError(t, err)

	// Посторонний пользователь
	_, err = svc.GetByID(context.Background(), 10, 500)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Несуществующее бронирование
	_, err = svc.GetByID(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookingsStatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{byUser: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, &fakeTurfRepo{}, nopLogger{})

	got, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.lastStatus)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("no_such_status"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTurfBookingsOwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{byTurf: []*domain.Booking{sampleBooking()}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 99}}
	svc := NewService(repo, turfs, nopLogger{})

	// Владелец получает список; дата фильтра нормализуется
	rawDate := time.Date(2024, 6, 10, 18, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	got, err := svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{
		UserID: 99,
		TurfID: 7,
		Date:   &rawDate,
		Status: ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, testDate, *repo.lastFilter.Date)

	// Не владелец
	_, err = svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{UserID: 1, TurfID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetTurfBookingsTurfNotFound(t *testing.T) {
	turfs := &fakeTurfRepo{err: turfRepo.ErrTurfNotFound}
	svc := NewService(&fakeBookingRepo{}, turfs, nopLogger{})

	_, err := svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{UserID: 1, TurfID: 404})
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestGetUnsyncedBookings(t *testing.T) {
	orphan := sampleBooking()
	repo := &fakeBookingRepo{unsynced: []*domain.Booking{orphan}}
	turfs := &fakeTurfRepo{turf: &domain.Turf{ID: 7, OwnerID: 99}}
	svc := NewService(repo, turfs, nopLogger{})

	got, err := svc.GetUnsyncedBookings(context.Background(), &models.GetUnsyncedBookingsRequest{
		UserID: 99,
		TurfID: 7,
		Date:   &testDate,
	})
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
	assert.Equal(t, orphan.ID, got.Bookings[0].ID)
	require.NotNil(t, repo.lastAuditAt)
	assert.Equal(t, testDate, *repo.lastAuditAt)

	// Аудит закрыт для всех, кроме владельца
	_, err = svc.GetUnsyncedBookings(context.Background(), &models.GetUnsyncedBookingsRequest{UserID: 1, TurfID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
