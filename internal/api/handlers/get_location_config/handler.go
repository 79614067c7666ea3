package get_location_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ChainBookingService/internal/api/handlers"
)

const msgInvalidLocationID = "некорректный ID локации"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/config
// Возвращает действующую конфигурацию: локации, глобальную или значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем locationId из URL
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/config - Invalid location ID: %q", mux.Vars(r)["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.service.GetLocationConfig(r.Context(), locationID)
	if err != nil {
		h.logger.Error("GET /locations/{id}/config - Failed to get config: location_id=%d, error=%v",
			locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations/{id}/config - Config retrieved successfully: location_id=%d, source=%s",
		locationID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
