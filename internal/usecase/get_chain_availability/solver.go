package get_chain_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// searchKey состояние поиска: индекс шага и курсор (Unix-секунды)
type searchKey struct {
	stepIndex int
	cursor    int64
}

// failureMemo множество заведомо неразрешимых состояний.
// Успехи не запоминаются: успех сразу завершает поиск для базового времени.
type failureMemo map[searchKey]struct{}

func (m failureMemo) failed(stepIndex int, cursor time.Time) bool {
	_, ok := m[searchKey{stepIndex: stepIndex, cursor: cursor.Unix()}]
	return ok
}

func (m failureMemo) markFailed(stepIndex int, cursor time.Time) {
	m[searchKey{stepIndex: stepIndex, cursor: cursor.Unix()}] = struct{}{}
}

// chainSolver поиск с возвратом по шагам цепочки
type chainSolver struct {
	steps []domain.StepCandidate
	cache *availabilityCache
	step  time.Duration
	zone  *time.Location
}

// solve подбирает мастеров для шагов начиная с stepIndex при старте в cursor.
// Возвращает первое найденное согласованное назначение (обход в глубину,
// кандидаты в исходном порядке); ok=false, если назначения нет.
func (s *chainSolver) solve(ctx context.Context, memo failureMemo, stepIndex int, cursor time.Time) ([]domain.Assignment, bool, error) {
	if stepIndex >= len(s.steps) {
		return []domain.Assignment{}, true, nil
	}

	if memo.failed(stepIndex, cursor) {
		return nil, false, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	current := s.steps[stepIndex]
	duration := current.Duration()

	for _, staffID := range current.StaffIDs {
		available, err := s.cache.get(ctx, staffID)
		if err != nil {
			return nil, false, err
		}

		if !s.covers(available, cursor, duration) {
			continue
		}

		end := cursor.Add(duration)
		next := timegrid.QuantizeUp(end, s.step)

		rest, ok, err := s.solve(ctx, memo, stepIndex+1, next)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}

		assignment := domain.Assignment{
			ServiceID:       current.ServiceID,
			StaffID:         staffID,
			StartUTC:        cursor,
			EndUTC:          end,
			StartLocal:      timegrid.ToLocal(cursor, s.zone),
			EndLocal:        timegrid.ToLocal(end, s.zone),
			DurationMinutes: current.DurationMinutes,
		}
		return append([]domain.Assignment{assignment}, rest...), true, nil
	}

	memo.markFailed(stepIndex, cursor)
	return nil, false, nil
}

// covers проверяет, что каждый шаг сетки, покрывающий услугу, присутствует в доступности.
// Непрерывность не выводится: каждый слот должен быть доступен явно.
func (s *chainSolver) covers(available timegrid.InstantSet, cursor time.Time, duration time.Duration) bool {
	slots := timegrid.SlotsToCover(duration, s.step)
	for i := 0; i < slots; i++ {
		if !available.Has(cursor.Add(time.Duration(i) * s.step)) {
			return false
		}
	}
	return true
}
