package get_chain_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ChainBookingService/internal/api/handlers"
	getChainAvailability "github.com/m04kA/SMC-ChainBookingService/internal/usecase/get_chain_availability"
)

const (
	msgInvalidLocationID  = "некорректный ID локации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректная цепочка услуг"
	msgInvalidDate        = "дата в прошлом"
	msgDateTooFar         = "дата слишком далеко в будущем"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase GetChainAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetChainAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/chain-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем locationId из URL
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/chain-availability - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req ChainAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/chain-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(locationID)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/chain-availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getChainAvailability.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/chain-availability - Invalid input: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getChainAvailability.ErrInvalidDate):
			h.logger.Warn("POST /locations/{id}/chain-availability - Date in the past: location_id=%d, date=%s", locationID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getChainAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("POST /locations/{id}/chain-availability - Date too far: location_id=%d, date=%s", locationID, req.Date)
			handlers.RespondUnprocessable(w, msgDateTooFar)

		case errors.Is(err, getChainAvailability.ErrServiceNotFound):
			h.logger.Warn("POST /locations/{id}/chain-availability - Service not found: location_id=%d, error=%v", locationID, err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /locations/{id}/chain-availability - Failed to resolve chain: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /locations/{id}/chain-availability - Plans resolved: location_id=%d, date=%s, steps=%d, plans=%d",
		locationID, req.Date, len(req.Steps), len(result.Plans))
	handlers.RespondJSON(w, http.StatusOK, response)
}
