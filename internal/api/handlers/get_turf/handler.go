package get_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgTurfNotFound  = "площадка не найдена"
)

type Handler struct {
	service TurfService
	logger  Logger
}

func NewHandler(service TurfService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id} - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	turf, err := h.service.GetByID(r.Context(), turfID)
	if err != nil {
		switch {
		case errors.Is(err, turfs.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		default:
			h.logger.Error("GET /turfs/{id} - Failed to get turf: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{id} - Turf retrieved: turf_id=%d", turfID)
	handlers.RespondJSON(w, http.StatusOK, turf)
}
