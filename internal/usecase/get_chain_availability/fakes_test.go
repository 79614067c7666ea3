package get_chain_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/catalog"
)

type fakeCatalog struct {
	services      map[int64]domain.ServiceInfo
	serviceErr    error
	eligible      map[int64][]int64
	eligibleErr   error
	serviceCalls  map[int64]int
	eligibleCalls map[int64]int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		services:      make(map[int64]domain.ServiceInfo),
		eligible:      make(map[int64][]int64),
		serviceCalls:  make(map[int64]int),
		eligibleCalls: make(map[int64]int),
	}
}

func (f *fakeCatalog) withService(id int64, minutes int, staff ...int64) *fakeCatalog {
	f.services[id] = domain.ServiceInfo{ServiceID: id, DurationMinutes: minutes}
	f.eligible[id] = staff
	return f
}

func (f *fakeCatalog) GetServiceInfo(_ context.Context, serviceID, _ int64) (*domain.ServiceInfo, error) {
	f.serviceCalls[serviceID]++
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	info, ok := f.services[serviceID]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &info, nil
}

func (f *fakeCatalog) GetEligibleStaff(_ context.Context, serviceID, _ int64) ([]int64, error) {
	f.eligibleCalls[serviceID]++
	if f.eligibleErr != nil {
		return nil, f.eligibleErr
	}
	return f.eligible[serviceID], nil
}

type fakeAvailability struct {
	slots map[int64][]time.Time
	errs  map[int64]error
	calls map[int64]int
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{
		slots: make(map[int64][]time.Time),
		errs:  make(map[int64]error),
		calls: make(map[int64]int),
	}
}

func (f *fakeAvailability) with(staffID int64, instants ...time.Time) *fakeAvailability {
	f.slots[staffID] = append(f.slots[staffID], instants...)
	return f
}

func (f *fakeAvailability) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeAvailability) GetStaffAvailability(_ context.Context, staffID, _ int64, _ time.Time) ([]time.Time, error) {
	f.calls[staffID]++
	if err := f.errs[staffID]; err != nil {
		return nil, err
	}
	return f.slots[staffID], nil
}

type fakeConfigs struct {
	config *domain.LocationSlotsConfig
	err    error
}

func (f *fakeConfigs) GetEffectiveConfig(context.Context, int64) (*domain.LocationSlotsConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time {
	return p.now
}

type recordingMetrics struct {
	outcomes []string
	plans    []int
}

func (m *recordingMetrics) ObserveChainResolution(outcome string, plans int, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
	m.plans = append(m.plans, plans)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func defaultConfig() *domain.LocationSlotsConfig {
	return &domain.LocationSlotsConfig{
		StepMinutes:             domain.DefaultStepMinutes,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		TimeZone:                "UTC",
	}
}

// at возвращает момент 16.10.2026 hh:mm UTC
func at(hh, mm int) time.Time {
	return time.Date(2026, 10, 16, hh, mm, 0, 0, time.UTC)
}

var requestDate = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

// dayBefore момент "сейчас" накануне даты запроса
var dayBefore = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(catalog *fakeCatalog, availability *fakeAvailability, config *domain.LocationSlotsConfig, now time.Time) (*UseCase, *recordingMetrics) {
	metrics := &recordingMetrics{}
	uc := NewUseCase(catalog, availability, &fakeConfigs{config: config}, metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, metrics
}
