package cancel_reservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	cancelReservation "github.com/m04kA/SMC-TurfService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgAlreadyCancelled   = "бронирование уже отменено"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело запроса опционально
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), cancelReservation.Request{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: booking_id=%d: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, cancelReservation.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
