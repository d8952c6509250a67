package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/booking"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/integrations/paymentservice"
)

// Фейки репозиториев

type fakeBookingRepo struct {
	createFn        func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	findActiveFn    func(ctx context.Context, key domain.SlotKey) (*domain.Booking, error)
	createCalls     int
	findActiveCalls int
	lastCreated     *domain.Booking
	lastFindKey     domain.SlotKey
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	f.lastCreated = b
	return f.createFn(ctx, b)
}

func (f *fakeBookingRepo) FindActiveBooking(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
	f.findActiveCalls++
	f.lastFindKey = key
	return f.findActiveFn(ctx, key)
}

type fakeTurfRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*domain.Turf, error)
	setReservedFn   func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error)
	setReservedKeys []domain.SlotKey
}

func (f *fakeTurfRepo) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeTurfRepo) SetSlotReserved(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
	f.setReservedKeys = append(f.setReservedKeys, key)
	return f.setReservedFn(ctx, key, reserved)
}

type fakePaymentClient struct {
	payment *paymentservice.Payment
	err     error
}

func (f *fakePaymentClient) GetLatestPaymentWithGracefulDegradation(ctx context.Context, userID int64, amount float64) (*paymentservice.Payment, error) {
	return f.payment, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Общие заготовки

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		UserID:      42,
		TurfID:      7,
		Date:        time.Date(2024, 6, 10, 15, 30, 0, 0, time.FixedZone("MSK", 3*3600)),
		TimeRange:   "09:00-10:00",
		PlayerCount: 10,
		TotalPrice:  1500,
	}
}

func existingTurf(ctx context.Context, id int64) (*domain.Turf, error) {
	return &domain.Turf{ID: id, OwnerID: 1, Name: "Центральный газон"}, nil
}

func noActiveBooking(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
	return nil, bookingRepo.ErrBookingNotFound
}

func echoCreate(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func TestExecuteCreated(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: echoCreate, findActiveFn: noActiveBooking}
	turfs := &fakeTurfRepo{
		getByIDFn: existingTurf,
		setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
			assert.True(t, reserved)
			return true, nil
		},
	}

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	assert.Equal(t, int64(101), resp.Booking.ID)
	assert.Equal(t, domain.StatusCompleted, resp.Booking.Status)
	// При выключенной платёжной интеграции оплата считается проведённой
	assert.Equal(t, domain.PaymentCompleted, resp.Booking.PaymentStatus)

	// Дата нормализована к полуночи UTC несмотря на таймзону клиента
	assert.Equal(t, testDate, bookings.lastCreated.BookingDate)
	require.Len(t, turfs.setReservedKeys, 1)
	assert.Equal(t, domain.SlotKey{TurfID: 7, Date: testDate, StartTime: "09:00", EndTime: "10:00"},
		turfs.setReservedKeys[0])
}

func TestExecuteAlreadyBookedExisting(t *testing.T) {
	existing := &domain.Booking{ID: 55, UserID: 42, TurfID: 7, Status: domain.StatusCompleted}
	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			t.Fatal("Create must not be called when an active booking exists")
			return nil, nil
		},
		findActiveFn: func(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
			return existing, nil
		},
	}
	turfs := &fakeTurfRepo{
		getByIDFn: existingTurf,
		setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
			t.Fatal("slot flag must not change for already_booked")
			return false, nil
		},
	}

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyBooked, resp.Outcome)
	assert.Equal(t, existing, resp.Booking)
	assert.Zero(t, bookings.createCalls)
}

func TestExecuteLostInsertRace(t *testing.T) {
	winner := &domain.Booking{ID: 77, UserID: 99, TurfID: 7, Status: domain.StatusCompleted}
	first := true
	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrDuplicateBooking
		},
		findActiveFn: func(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
			// Первая проверка журнала пуста, после проигранной гонки виден победитель
			if first {
				first = false
				return nil, bookingRepo.ErrBookingNotFound
			}
			return winner, nil
		},
	}
	turfs := &fakeTurfRepo{
		getByIDFn: existingTurf,
		setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
			t.Fatal("loser of the insert race must not flip the slot")
			return false, nil
		},
	}

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyBooked, resp.Outcome)
	assert.Equal(t, int64(77), resp.Booking.ID)
	assert.Equal(t, 2, bookings.findActiveCalls)
}

func TestExecuteSlotSyncFailure(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: echoCreate, findActiveFn: noActiveBooking}
	turfs := &fakeTurfRepo{
		getByIDFn: existingTurf,
		setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
			return false, errors.New("connection reset")
		},
	}

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotOutOfSync)

	var syncErr *SlotSyncError
	require.ErrorAs(t, err, &syncErr)
	// Бронирование сохранено и его ID виден вызывающей стороне для сверки
	assert.Equal(t, int64(101), syncErr.BookingID)
	assert.Equal(t, 1, bookings.createCalls)
}

func TestExecuteSlotMissedIsSyncFailure(t *testing.T) {
	// Слот на эту дату не засеян: вставка в журнал проходит, флаг не находится
	bookings := &fakeBookingRepo{createFn: echoCreate, findActiveFn: noActiveBooking}
	turfs := &fakeTurfRepo{
		getByIDFn: existingTurf,
		setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
			return false, nil
		},
	}

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())

	var syncErr *SlotSyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, int64(101), syncErr.BookingID)
}

func TestExecuteTurfNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{
		createFn:     echoCreate,
		findActiveFn: noActiveBooking,
	}
	turfs := &fakeTurfRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
			return nil, turfRepo.ErrTurfNotFound
		},
	}

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTurfNotFound)
	assert.Zero(t, bookings.createCalls)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero user id", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "zero turf id", mutate: func(r *Request) { r.TurfID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "zero players", mutate: func(r *Request) { r.PlayerCount = 0 }},
		{name: "too many players", mutate: func(r *Request) { r.PlayerCount = 101 }},
		{name: "negative price", mutate: func(r *Request) { r.TotalPrice = -1 }},
		{name: "hour not zero-padded", mutate: func(r *Request) { r.TimeRange = "9:00-10:00" }},
		{name: "end before start", mutate: func(r *Request) { r.TimeRange = "10:00-09:00" }},
		{name: "start equals end", mutate: func(r *Request) { r.TimeRange = "10:00-10:00" }},
		{name: "no separator", mutate: func(r *Request) { r.TimeRange = "0900 1000" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{
				createFn:     echoCreate,
				findActiveFn: noActiveBooking,
			}
			turfs := &fakeTurfRepo{
				getByIDFn: func(ctx context.Context, id int64) (*domain.Turf, error) {
					t.Fatal("invalid request must be rejected before any storage call")
					return nil, nil
				},
			}

			req := validRequest()
			tt.mutate(req)

			uc := NewUseCase(bookings, turfs, nil, nopLogger{})
			resp, err := uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, bookings.createCalls)
			assert.Zero(t, bookings.findActiveCalls)
		})
	}
}

func TestExecuteTimeRangeWithSpaces(t *testing.T) {
	// Пробелы вокруг частей диапазона срезаются при разборе,
	// в журнал и календарь уходит канонический ключ
	bookings := &fakeBookingRepo{createFn: echoCreate, findActiveFn: noActiveBooking}
	turfs := &fakeTurfRepo{
		getByIDFn: existingTurf,
		setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
			return true, nil
		},
	}

	req := validRequest()
	req.TimeRange = "09:00 - 10:00"

	uc := NewUseCase(bookings, turfs, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, resp.Outcome)
	require.Len(t, turfs.setReservedKeys, 1)
	assert.Equal(t, "09:00", turfs.setReservedKeys[0].StartTime.String())
	assert.Equal(t, "10:00", turfs.setReservedKeys[0].EndTime.String())
}

func TestResolvePaymentStatus(t *testing.T) {
	tests := []struct {
		name   string
		client PaymentServiceClient
		want   domain.PaymentStatus
	}{
		{
			name:   "captured payment",
			client: &fakePaymentClient{payment: &paymentservice.Payment{ID: 1, PaymentStatus: paymentservice.StatusSuccess}},
			want:   domain.PaymentCompleted,
		},
		{
			name:   "pending payment",
			client: &fakePaymentClient{payment: &paymentservice.Payment{ID: 1, PaymentStatus: paymentservice.StatusPending}},
			want:   domain.PaymentPending,
		},
		{
			name:   "payment not found",
			client: &fakePaymentClient{err: paymentservice.ErrPaymentNotFound},
			want:   domain.PaymentPending,
		},
		{
			name:   "payment service degraded",
			client: &fakePaymentClient{err: paymentservice.ErrServiceDegraded},
			want:   domain.PaymentPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{createFn: echoCreate, findActiveFn: noActiveBooking}
			turfs := &fakeTurfRepo{
				getByIDFn: existingTurf,
				setReservedFn: func(ctx context.Context, key domain.SlotKey, reserved bool) (bool, error) {
					return true, nil
				},
			}

			uc := NewUseCase(bookings, turfs, tt.client, nopLogger{})
			resp, err := uc.Execute(context.Background(), validRequest())

			require.NoError(t, err)
			// Платёжный контур никогда не блокирует создание брони
			assert.Equal(t, OutcomeCreated, resp.Outcome)
			assert.Equal(t, tt.want, resp.Booking.PaymentStatus)
		})
	}
}
