package timegrid

import (
	"sort"
	"time"
)

// InstantSet множество моментов на сетке, ключ: Unix-время в секундах.
// time.Time не используется как ключ: он хранит зону и монотонные часы.
type InstantSet map[int64]struct{}

// NewInstantSet строит множество, отбрасывая моменты вне сетки step
func NewInstantSet(instants []time.Time, step time.Duration) InstantSet {
	set := make(InstantSet, len(instants))
	for _, t := range instants {
		if !IsAligned(t, step) {
			continue
		}
		set[t.Unix()] = struct{}{}
	}
	return set
}

// Has проверяет наличие момента в множестве
func (s InstantSet) Has(t time.Time) bool {
	_, ok := s[t.Unix()]
	return ok
}

// Len количество моментов
func (s InstantSet) Len() int {
	return len(s)
}

// Union добавляет в множество все моменты other
func (s InstantSet) Union(other InstantSet) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Sorted возвращает моменты в UTC по возрастанию
func (s InstantSet) Sorted() []time.Time {
	keys := make([]int64, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	result := make([]time.Time, len(keys))
	for i, k := range keys {
		result[i] = time.Unix(k, 0).UTC()
	}
	return result
}
