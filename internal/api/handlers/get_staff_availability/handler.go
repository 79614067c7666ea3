package get_staff_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ChainBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/internal/service/availability"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgInvalidStaffID    = "некорректный ID мастера"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/staff/{staffId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/staff/{id}/availability - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/staff/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /locations/{id}/staff/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/staff/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDayAvailability(r.Context(), staffID, locationID, date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /locations/{id}/staff/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /locations/{id}/staff/{id}/availability - Failed to get availability: location_id=%d, staff_id=%d, error=%v",
			locationID, staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations/{id}/staff/{id}/availability - Availability retrieved: location_id=%d, staff_id=%d, slots=%d",
		locationID, staffID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
