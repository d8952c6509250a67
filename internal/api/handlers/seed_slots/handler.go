package seed_slots

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	seedSlots "github.com/m04kA/SMC-TurfService/internal/usecase/seed_slots"
)

const (
	msgInvalidTurfID      = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTurfNotFound       = "площадка не найдена"
)

type Handler struct {
	useCase SeedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SeedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turfs/{turfId}/slots/seed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /turfs/{id}/slots/seed - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("POST /turfs/{id}/slots/seed - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело запроса опционально: без него действует дефолтный шаблон
	var req seedSlots.Request
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /turfs/{id}/slots/seed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TurfID = turfID

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, seedSlots.ErrInvalidInput):
			h.logger.Warn("POST /turfs/{id}/slots/seed - Invalid input: turf_id=%d: %v", turfID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, seedSlots.ErrTurfNotFound):
			h.logger.Warn("POST /turfs/{id}/slots/seed - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		default:
			h.logger.Error("POST /turfs/{id}/slots/seed - Failed to seed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turfs/{id}/slots/seed - Seeded %d slots: turf_id=%d, days=%d",
		result.SlotsCreated, turfID, result.Days)
	handlers.RespondJSON(w, http.StatusOK, result)
}
