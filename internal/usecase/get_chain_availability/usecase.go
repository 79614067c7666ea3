package get_chain_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// Исходы подбора для метрик
const (
	outcomePlans   = "plans"
	outcomeEmpty   = "empty"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

// UseCase use case подбора времени для цепочки услуг
type UseCase struct {
	catalog      ServiceCatalog
	availability StaffAvailabilityProvider
	configs      ConfigProvider
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ServiceCatalog,
	availability StaffAvailabilityProvider,
	configs ConfigProvider,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &UseCase{
		catalog:      catalog,
		availability: availability,
		configs:      configs,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет подбор: для каждого допустимого времени начала находит
// одно согласованное назначение мастеров на всю цепочку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	started := time.Now()
	defer func() {
		uc.observe(started, resp, err)
	}()

	uc.logger.Info("GetChainAvailability: location=%d, date=%s, steps=%d",
		req.LocationID, req.Date.Format(domain.DateFormat), len(req.Steps))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetChainAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем действующую конфигурацию локации
	config, err := uc.configs.GetEffectiveConfig(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("GetChainAvailability: failed to get config for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
	}

	zone, err := config.Location()
	if err != nil {
		uc.logger.Error("GetChainAvailability: invalid time zone for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	step := config.Step()

	// 4. Валидация даты с учетом зоны и конфигурации
	if err := validateDate(req.Date, now, zone, config); err != nil {
		uc.logger.Warn("GetChainAvailability: date validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:       req.Date,
		LocationID: req.LocationID,
		TimeZone:   config.TimeZone,
		Plans:      []domain.Plan{},
	}

	// 5. Получаем длительности всех различных услуг цепочки
	services, err := uc.resolveServices(ctx, req)
	if err != nil {
		return nil, err
	}

	// 6. Раскрываем кандидатов для каждого шага.
	// Пустой список у любого шага означает, что цепочку выполнить нельзя
	resolver := newCandidateResolver(uc.catalog, req.LocationID)
	candidates := make([]domain.StepCandidate, len(req.Steps))
	for i, chainStep := range req.Steps {
		candidate, err := resolver.resolve(ctx, chainStep, services[chainStep.ServiceID])
		if err != nil {
			uc.logger.Error("GetChainAvailability: failed to resolve staff for step %d (service id=%d, staff=%s): %v",
				i, chainStep.ServiceID, chainStep.Staff, err)
			return nil, fmt.Errorf("%w: failed to get eligible staff: %w", ErrInternal, err)
		}
		if len(candidate.StaffIDs) == 0 {
			uc.logger.Info("GetChainAvailability: no eligible staff for step %d (service id=%d, staff=%s)",
				i, chainStep.ServiceID, chainStep.Staff)
			return response, nil
		}
		uc.logger.Info("GetChainAvailability: step %d (service id=%d, staff=%s): %d candidates",
			i, chainStep.ServiceID, chainStep.Staff, len(candidate.StaffIDs))
		candidates[i] = candidate
	}

	// 7. Строим множество базовых времён начала только по кандидатам первого шага
	cache := newAvailabilityCache(uc.availability, req.LocationID, req.Date, step)
	base := make(timegrid.InstantSet)
	for _, staffID := range candidates[0].StaffIDs {
		available, err := cache.get(ctx, staffID)
		if err != nil {
			uc.logger.Error("GetChainAvailability: failed to get availability for staff id=%d: %v", staffID, err)
			return nil, fmt.Errorf("%w: failed to get staff availability: %w", ErrInternal, err)
		}
		base.Union(available)
	}

	// 8. Отбрасываем времена раньше минимально допустимого (только для сегодняшней даты)
	starts := base.Sorted()
	if earliest, ok := timegrid.EarliestAllowedStart(req.Date, now, zone, config.Notice(), step); ok {
		filtered := starts[:0]
		for _, start := range starts {
			if !start.Before(earliest) {
				filtered = append(filtered, start)
			}
		}
		starts = filtered
	}

	if len(starts) == 0 {
		uc.logger.Info("GetChainAvailability: no base start times for location=%d, date=%s",
			req.LocationID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 9. Ищем назначение для каждого базового времени
	solver := &chainSolver{
		steps: candidates,
		cache: cache,
		step:  step,
		zone:  zone,
	}
	memo := make(failureMemo)

	for _, start := range starts {
		assignments, ok, err := solver.solve(ctx, memo, 0, start)
		if err != nil {
			uc.logger.Error("GetChainAvailability: chain search failed at %s: %v", start.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: chain search: %w", ErrInternal, err)
		}
		if !ok {
			continue
		}

		response.Plans = append(response.Plans, domain.Plan{
			StartUTC:        start,
			StartLocal:      timegrid.ToLocal(start, zone),
			StartLocalLabel: timegrid.LocalLabel(start, zone),
			Assignments:     assignments,
		})
	}

	// 10. Сортируем планы по времени начала
	sort.SliceStable(response.Plans, func(i, j int) bool {
		return response.Plans[i].StartUTC.Before(response.Plans[j].StartUTC)
	})

	uc.logger.Info("GetChainAvailability: found %d plans for location=%d, date=%s (base candidates=%d)",
		len(response.Plans), req.LocationID, req.Date.Format(domain.DateFormat), len(starts))

	return response, nil
}

// resolveServices получает ServiceInfo для каждой различной услуги цепочки.
// Любая некорректная услуга прерывает весь подбор
func (uc *UseCase) resolveServices(ctx context.Context, req *Request) (map[int64]domain.ServiceInfo, error) {
	services := make(map[int64]domain.ServiceInfo, len(req.Steps))

	for _, step := range req.Steps {
		if _, ok := services[step.ServiceID]; ok {
			continue
		}

		info, err := uc.catalog.GetServiceInfo(ctx, step.ServiceID, req.LocationID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) || errors.Is(err, catalogRepo.ErrInvalidDuration) {
				uc.logger.Warn("GetChainAvailability: service id=%d is not bookable at location=%d: %v",
					step.ServiceID, req.LocationID, err)
				return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, step.ServiceID)
			}
			uc.logger.Error("GetChainAvailability: failed to get service id=%d: %v", step.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service id=%d: %w", ErrInternal, step.ServiceID, err)
		}

		if info.DurationMinutes <= 0 {
			uc.logger.Warn("GetChainAvailability: service id=%d has no duration", step.ServiceID)
			return nil, fmt.Errorf("%w: service id=%d has no duration", ErrServiceNotFound, step.ServiceID)
		}

		services[step.ServiceID] = *info
	}

	return services, nil
}

func (uc *UseCase) observe(started time.Time, resp *Response, err error) {
	outcome := outcomePlans
	plans := 0

	switch {
	case err != nil && errors.Is(err, ErrInternal):
		outcome = outcomeError
	case err != nil:
		outcome = outcomeInvalid
	case resp == nil || len(resp.Plans) == 0:
		outcome = outcomeEmpty
	default:
		plans = len(resp.Plans)
	}

	uc.metrics.ObserveChainResolution(outcome, plans, time.Since(started))
}
