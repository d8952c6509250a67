package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-TurfService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTurfNotFound       = "площадка не найдена"
	msgSlotOutOfSync      = "бронирование сохранено, но календарь слотов не обновлён"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var syncErr *createReservation.SlotSyncError

		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, turf_id=%d: %v", userID, req.TurfID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrTurfNotFound):
			h.logger.Warn("POST /reservations - Turf not found: turf_id=%d", req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.As(err, &syncErr):
			h.logger.Error("POST /reservations - Slot out of sync: booking_id=%d, turf_id=%d", syncErr.BookingID, req.TurfID)
			handlers.RespondJSON(w, http.StatusBadGateway, SlotSyncFailureResponse{
				Error:     handlers.CodeSlotSyncFailure,
				Detail:    msgSlotOutOfSync,
				BookingID: syncErr.BookingID,
			})

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, turf_id=%d, error=%v",
				userID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation processed: outcome=%s, booking_id=%d, user_id=%d, turf_id=%d",
		result.Outcome, response.BookingID, userID, req.TurfID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
