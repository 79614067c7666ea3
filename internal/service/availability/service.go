package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-ChainBookingService/internal/service/availability/models"
	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// Service сервис расчёта доступности одного мастера на дату
type Service struct {
	configs   ConfigProvider
	schedules StaffScheduleClient
	bookings  BookingRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	configs ConfigProvider,
	schedules StaffScheduleClient,
	bookings BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		configs:   configs,
		schedules: schedules,
		bookings:  bookings,
		logger:    logger,
	}
}

// interval перерыв мастера, полуоткрытый интервал [start, end) в UTC
type interval struct {
	start time.Time
	end   time.Time
}

func (i interval) overlaps(from, to time.Time) bool {
	return i.start.Before(to) && i.end.After(from)
}

// GetStaffAvailability возвращает моменты сетки (UTC, по возрастанию), в которые мастер
// свободен как минимум один шаг. Длительность услуг здесь не учитывается.
// Неизвестный мастер или выходной дают пустой список без ошибки
func (s *Service) GetStaffAvailability(ctx context.Context, staffID, locationID int64, date time.Time) ([]time.Time, error) {
	config, err := s.configs.GetEffectiveConfig(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
	}

	zone, err := config.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return s.availableStarts(ctx, staffID, locationID, date, zone, config.Step())
}

// GetDayAvailability возвращает доступность мастера с локальными метками времени
func (s *Service) GetDayAvailability(ctx context.Context, staffID, locationID int64, date time.Time) (*models.StaffAvailabilityResponse, error) {
	if staffID <= 0 || locationID <= 0 || date.IsZero() {
		return nil, fmt.Errorf("%w: staffID, locationID and date are required", ErrInvalidInput)
	}

	s.logger.Info("GetDayAvailability: staff=%d, location=%d, date=%s",
		staffID, locationID, date.Format(domain.DateFormat))

	config, err := s.configs.GetEffectiveConfig(ctx, locationID)
	if err != nil {
		s.logger.Error("GetDayAvailability: failed to get config for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
	}

	zone, err := config.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	starts, err := s.availableStarts(ctx, staffID, locationID, date, zone, config.Step())
	if err != nil {
		return nil, err
	}

	resp := &models.StaffAvailabilityResponse{
		StaffID:     staffID,
		LocationID:  locationID,
		Date:        date.Format(domain.DateFormat),
		TimeZone:    config.TimeZone,
		StepMinutes: config.StepMinutes,
		Slots:       make([]models.Slot, 0, len(starts)),
	}
	for _, start := range starts {
		resp.Slots = append(resp.Slots, models.Slot{
			StartUTC:   start,
			StartLocal: timegrid.ToLocal(start, zone),
			Label:      timegrid.LocalLabel(start, zone),
		})
	}

	return resp, nil
}

func (s *Service) availableStarts(
	ctx context.Context,
	staffID, locationID int64,
	date time.Time,
	zone *time.Location,
	step time.Duration,
) ([]time.Time, error) {
	// 1. Получаем график мастера
	schedule, err := s.schedules.GetStaffSchedule(ctx, staffID, locationID, date)
	if err != nil {
		if errors.Is(err, staffservice.ErrStaffNotFound) {
			s.logger.Warn("GetStaffAvailability: staff id=%d not found at location=%d", staffID, locationID)
			return []time.Time{}, nil
		}
		s.logger.Error("GetStaffAvailability: failed to get schedule for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get staff schedule: %w", ErrInternal, err)
	}

	if !schedule.IsWorking {
		return []time.Time{}, nil
	}

	// 2. Переводим рабочее время и перерывы в UTC
	workStart, err := schedule.StartTime.OnDate(date, zone)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %w", ErrInternal, err)
	}
	workEnd, err := schedule.EndTime.OnDate(date, zone)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %w", ErrInternal, err)
	}
	workStart, workEnd = workStart.UTC(), workEnd.UTC()

	breaks := make([]interval, 0, len(schedule.Breaks))
	for _, b := range schedule.Breaks {
		breakStart, err := b.StartTime.OnDate(date, zone)
		if err != nil {
			return nil, fmt.Errorf("%w: break start: %w", ErrInternal, err)
		}
		breakEnd, err := b.EndTime.OnDate(date, zone)
		if err != nil {
			return nil, fmt.Errorf("%w: break end: %w", ErrInternal, err)
		}
		breaks = append(breaks, interval{start: breakStart.UTC(), end: breakEnd.UTC()})
	}

	// 3. Активные бронирования мастера во всех локациях: мастер не может быть в двух местах сразу
	all, err := s.bookings.GetStaffBookings(ctx, domain.StaffBookingsFilter{
		StaffID: staffID,
		From:    workStart,
		To:      workEnd,
	})
	if err != nil {
		s.logger.Error("GetStaffAvailability: failed to get bookings for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}
	bookings := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b.IsActive() {
			bookings = append(bookings, b)
		}
	}

	// 4. Перебираем шаги сетки внутри рабочего времени
	starts := make([]time.Time, 0)
	for t := timegrid.QuantizeUp(workStart, step); !t.Add(step).After(workEnd); t = t.Add(step) {
		if isBusy(breaks, bookings, t, t.Add(step)) {
			continue
		}
		starts = append(starts, t)
	}

	return starts, nil
}

func isBusy(breaks []interval, bookings []*domain.Booking, from, to time.Time) bool {
	for _, i := range breaks {
		if i.overlaps(from, to) {
			return true
		}
	}
	for _, b := range bookings {
		if b.Overlaps(from, to) {
			return true
		}
	}
	return false
}
