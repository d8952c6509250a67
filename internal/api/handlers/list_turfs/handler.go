package list_turfs

import (
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
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

// Handle GET /api/v1/turfs?city=&category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListTurfsRequest{}
	if city := r.URL.Query().Get("city"); city != "" {
		req.City = &city
	}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /turfs - Failed to list turfs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /turfs - Returned %d turfs", len(result.Turfs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
