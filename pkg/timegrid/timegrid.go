// Package timegrid квантует время на сетку с фиксированным шагом.
//
// Все вычисления ведутся в UTC. Локальная зона используется только для
// определения календарного дня и для отображения.
package timegrid

import (
	"errors"
	"fmt"
	"time"
)

// DefaultStep шаг сетки по умолчанию
const DefaultStep = 15 * time.Minute

// LabelFormat формат локальной метки времени (HH:MM)
const LabelFormat = "15:04"

// ErrInvalidStep возвращается, когда шаг не делит час нацело
var ErrInvalidStep = errors.New("timegrid: step must be a positive divisor of one hour")

// ValidateStep проверяет, что шаг положительный и делит час без остатка.
// Иначе отсчёт от начала часа даст границы, не совпадающие между часами.
func ValidateStep(step time.Duration) error {
	if step <= 0 || step%time.Minute != 0 || time.Hour%step != 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidStep, step)
	}
	return nil
}

// QuantizeUp округляет момент вверх до ближайшей границы сетки,
// отсчитываемой от начала часа в UTC. Момент на границе возвращается без изменений.
func QuantizeUp(t time.Time, step time.Duration) time.Time {
	if step <= 0 {
		step = DefaultStep
	}

	t = t.UTC()
	hourStart := t.Truncate(time.Hour)
	offset := t.Sub(hourStart)

	rem := offset % step
	if rem == 0 {
		return hourStart.Add(offset)
	}
	return hourStart.Add(offset - rem + step)
}

// IsAligned проверяет, что момент лежит ровно на границе сетки
func IsAligned(t time.Time, step time.Duration) bool {
	return QuantizeUp(t, step).Equal(t)
}

// IsRequestedDateToday сравнивает календарную дату запроса с текущим днём в зоне zone.
// Дата запроса не содержит времени, поэтому берутся только год, месяц и день.
func IsRequestedDateToday(date, now time.Time, zone *time.Location) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.In(zone).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsRequestedDateInPast проверяет, что дата раньше текущего дня в зоне zone
func IsRequestedDateInPast(date, now time.Time, zone *time.Location) bool {
	return calendarDay(date, time.UTC).Before(calendarDay(now.In(zone), time.UTC))
}

// DaysAhead возвращает количество календарных дней от сегодняшнего (в зоне zone) до date
func DaysAhead(date, now time.Time, zone *time.Location) int {
	from := calendarDay(now.In(zone), time.UTC)
	to := calendarDay(date, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// EarliestAllowedStart возвращает минимально допустимое начало для даты.
// Если дата не сегодня, ограничения по времени суток нет и возвращается false.
func EarliestAllowedStart(date, now time.Time, zone *time.Location, notice, step time.Duration) (time.Time, bool) {
	if !IsRequestedDateToday(date, now, zone) {
		return time.Time{}, false
	}
	return QuantizeUp(now.UTC().Add(notice), step), true
}

// ToLocal проецирует момент в локальную зону
func ToLocal(t time.Time, zone *time.Location) time.Time {
	return t.In(zone)
}

// LocalLabel форматирует момент как HH:MM в локальной зоне
func LocalLabel(t time.Time, zone *time.Location) string {
	return t.In(zone).Format(LabelFormat)
}

// SlotsToCover количество шагов сетки, необходимое для покрытия длительности
func SlotsToCover(duration, step time.Duration) int {
	if duration <= 0 {
		return 0
	}
	n := duration / step
	if duration%step != 0 {
		n++
	}
	return int(n)
}

func calendarDay(t time.Time, zone *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, zone)
}
