package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	createReservation "github.com/m04kA/SMC-TurfService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp    *createReservation.Response
	err     error
	lastReq *createReservation.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc CreateReservationUseCase, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	// Auth middleware кладёт ID пользователя в контекст, как в боевом роутере
	srv := middleware.Auth(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body))
	if withUser {
		req.Header.Set(middleware.HeaderUserID, "42")
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func validBody() string {
	return `{"turfId":7,"date":"2024-06-10","timeRange":"09:00-10:00","playerCount":10,"totalPrice":1500}`
}

func TestHandleCreated(t *testing.T) {
	booking := &domain.Booking{
		ID:            101,
		UserID:        42,
		TurfID:        7,
		BookingDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndTime:       "10:00",
		PlayerCount:   10,
		TotalPrice:    1500,
		Status:        domain.StatusCompleted,
		PaymentStatus: domain.PaymentCompleted,
	}
	uc := &fakeUseCase{resp: &createReservation.Response{Outcome: createReservation.OutcomeCreated, Booking: booking}}

	rec := doRequest(t, uc, validBody(), true)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp.Outcome)
	assert.Equal(t, int64(101), resp.BookingID)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)

	// ID пользователя берётся из заголовка, не из тела
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.UserID)
}

func TestHandleAlreadyBooked(t *testing.T) {
	booking := &domain.Booking{ID: 55, UserID: 9, TurfID: 7, StartTime: "09:00", EndTime: "10:00",
		BookingDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Status: domain.StatusCompleted}
	uc := &fakeUseCase{resp: &createReservation.Response{Outcome: createReservation.OutcomeAlreadyBooked, Booking: booking}}

	rec := doRequest(t, uc, validBody(), true)

	// Занятый слот не ошибка протокола: тот же 200 с другим исходом
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "already_booked", resp.Outcome)
	assert.Equal(t, int64(55), resp.BookingID)
}

func TestHandleSlotSyncFailure(t *testing.T) {
	uc := &fakeUseCase{err: &createReservation.SlotSyncError{BookingID: 101}}

	rec := doRequest(t, uc, validBody(), true)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp SlotSyncFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "slot_sync_failure", resp.Error)
	assert.Equal(t, int64(101), resp.BookingID)
}

func TestHandleInvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrInvalidInput}

	rec := doRequest(t, uc, validBody(), true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTurfNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrTurfNotFound}

	rec := doRequest(t, uc, validBody(), true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleBadBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"turfId":`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)

	rec = doRequest(t, uc, `{"turfId":7,"date":"10.06.2024","timeRange":"09:00-10:00","playerCount":10}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMissingUser(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, validBody(), false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}
