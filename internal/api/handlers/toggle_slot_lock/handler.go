package toggle_slot_lock

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	toggleSlotLock "github.com/m04kA/SMC-TurfService/internal/usecase/toggle_slot_lock"
)

const (
	msgInvalidTurfID      = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTurfNotFound       = "площадка не найдена"
	msgSlotNotFound       = "слот не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase ToggleSlotLockUseCase
	logger  Logger
}

func NewHandler(useCase ToggleSlotLockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/turfs/{turfId}/slots/lock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /turfs/{id}/slots/lock - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /turfs/{id}/slots/lock - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ToggleSlotLockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /turfs/{id}/slots/lock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(turfID, userID)
	if err != nil {
		h.logger.Warn("PATCH /turfs/{id}/slots/lock - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, toggleSlotLock.ErrInvalidInput):
			h.logger.Warn("PATCH /turfs/{id}/slots/lock - Invalid input: turf_id=%d: %v", turfID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, toggleSlotLock.ErrTurfNotFound):
			h.logger.Warn("PATCH /turfs/{id}/slots/lock - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, toggleSlotLock.ErrSlotNotFound):
			h.logger.Warn("PATCH /turfs/{id}/slots/lock - Slot not found: turf_id=%d, range=%s", turfID, req.TimeRange)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, toggleSlotLock.ErrAccessDenied):
			h.logger.Warn("PATCH /turfs/{id}/slots/lock - Access denied: turf_id=%d, user_id=%d", turfID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /turfs/{id}/slots/lock - Failed to toggle: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /turfs/{id}/slots/lock - Slot lock toggled: turf_id=%d, range=%s, state=%s",
		turfID, req.TimeRange, result.LockState)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
