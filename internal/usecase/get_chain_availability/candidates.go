package get_chain_availability

import (
	"context"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
)

// candidateResolver раскрывает шаг цепочки в упорядоченный список мастеров.
// Живёт ровно один подбор: кэш eligible не разделяется между запросами.
type candidateResolver struct {
	catalog    ServiceCatalog
	locationID int64
	eligible   map[int64][]int64 // serviceID -> мастера, допущенные к услуге
}

func newCandidateResolver(catalog ServiceCatalog, locationID int64) *candidateResolver {
	return &candidateResolver{
		catalog:    catalog,
		locationID: locationID,
		eligible:   make(map[int64][]int64),
	}
}

// resolve возвращает кандидатов шага.
// Закреплённый мастер не проверяется здесь: несуществующий ID просто не будет иметь доступности.
// Порядок кандидатов ANY сохраняется как есть, он определяет порядок перебора.
func (r *candidateResolver) resolve(ctx context.Context, step domain.ChainStep, service domain.ServiceInfo) (domain.StepCandidate, error) {
	candidate := domain.StepCandidate{
		ServiceID:       service.ServiceID,
		DurationMinutes: service.DurationMinutes,
	}

	if staffID, ok := step.Staff.StaffID(); ok {
		candidate.StaffIDs = []int64{staffID}
		return candidate, nil
	}

	staff, cached := r.eligible[step.ServiceID]
	if !cached {
		var err error
		staff, err = r.catalog.GetEligibleStaff(ctx, step.ServiceID, r.locationID)
		if err != nil {
			// ошибку не кэшируем: следующий вызов повторит запрос
			return domain.StepCandidate{}, err
		}
		r.eligible[step.ServiceID] = staff
	}

	candidate.StaffIDs = append([]int64(nil), staff...)
	return candidate, nil
}
