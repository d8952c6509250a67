package get_turf_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings"
	"github.com/m04kA/SMC-TurfService/internal/service/bookings/models"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgMissingUserID = "отсутствует ID пользователя"
	msgTurfNotFound  = "площадка не найдена"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/bookings?date=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turfID, userID, ok := h.parseIdentity(w, r, "GET /turfs/{id}/bookings")
	if !ok {
		return
	}

	req := &models.GetTurfBookingsRequest{
		UserID: userID,
		TurfID: turfID,
	}

	date, ok := h.parseDate(w, r, "GET /turfs/{id}/bookings")
	if !ok {
		return
	}
	req.Date = date

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.GetTurfBookings(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, turfID, userID, "GET /turfs/{id}/bookings")
		return
	}

	h.logger.Info("GET /turfs/{id}/bookings - Returned %d bookings: turf_id=%d", len(result.Bookings), turfID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUnsynced GET /api/v1/turfs/{turfId}/bookings/unsynced?date=
// Аудит: активные бронирования, чей слот в календаре не помечен занятым
func (h *Handler) HandleUnsynced(w http.ResponseWriter, r *http.Request) {
	turfID, userID, ok := h.parseIdentity(w, r, "GET /turfs/{id}/bookings/unsynced")
	if !ok {
		return
	}

	date, ok := h.parseDate(w, r, "GET /turfs/{id}/bookings/unsynced")
	if !ok {
		return
	}

	result, err := h.service.GetUnsyncedBookings(r.Context(), &models.GetUnsyncedBookingsRequest{
		UserID: userID,
		TurfID: turfID,
		Date:   date,
	})
	if err != nil {
		h.respondServiceError(w, err, turfID, userID, "GET /turfs/{id}/bookings/unsynced")
		return
	}

	h.logger.Info("GET /turfs/{id}/bookings/unsynced - Returned %d bookings: turf_id=%d", len(result.Bookings), turfID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseIdentity(w http.ResponseWriter, r *http.Request, op string) (turfID, userID int64, ok bool) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid turf ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return 0, 0, false
	}

	userID, found := middleware.GetUserID(r.Context())
	if !found {
		h.logger.Warn("%s - Missing user ID", op)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}

	return turfID, userID, true
}

func (h *Handler) parseDate(w http.ResponseWriter, r *http.Request, op string) (*time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return nil, true
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("%s - Invalid date %q: %v", op, dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}
	return &date, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error, turfID, userID int64, op string) {
	switch {
	case errors.Is(err, bookings.ErrTurfNotFound):
		h.logger.Warn("%s - Turf not found: turf_id=%d", op, turfID)
		handlers.RespondNotFound(w, msgTurfNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: turf_id=%d, user_id=%d", op, turfID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid filter: turf_id=%d", op, turfID)
		handlers.RespondBadRequest(w, msgInvalidFilter)

	default:
		h.logger.Error("%s - Failed: turf_id=%d, error=%v", op, turfID, err)
		handlers.RespondInternalError(w)
	}
}
