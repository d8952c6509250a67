package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TurfService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTurfID    = "некорректный ID площадки"
	msgMissingDate      = "отсутствует обязательный параметр date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTurfNotFound     = "площадка не найдена"
	msgScheduleNotFound = "на указанную дату нет слотов"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/slots - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{id}/slots - Missing date parameter: turf_id=%d", turfID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TurfID: turfID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/slots - Invalid input: turf_id=%d: %v", turfID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/slots - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailableSlots.ErrScheduleNotFound):
			h.logger.Warn("GET /turfs/{id}/slots - No slots seeded: turf_id=%d, date=%s", turfID, dateStr)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("GET /turfs/{id}/slots - Failed to get slots: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{id}/slots - Returned %d available slots: turf_id=%d, date=%s",
		len(result.Slots), turfID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
