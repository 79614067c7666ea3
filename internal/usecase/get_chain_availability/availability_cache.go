package get_chain_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// availabilityCache запрашивает доступность каждого мастера не более одного раза за подбор
type availabilityCache struct {
	provider   StaffAvailabilityProvider
	locationID int64
	date       time.Time
	step       time.Duration
	sets       map[int64]timegrid.InstantSet
}

func newAvailabilityCache(provider StaffAvailabilityProvider, locationID int64, date time.Time, step time.Duration) *availabilityCache {
	return &availabilityCache{
		provider:   provider,
		locationID: locationID,
		date:       date,
		step:       step,
		sets:       make(map[int64]timegrid.InstantSet),
	}
}

// get возвращает множество моментов начала для мастера.
// Моменты вне сетки отбрасываются: решатель проверяет только выровненные курсоры.
func (c *availabilityCache) get(ctx context.Context, staffID int64) (timegrid.InstantSet, error) {
	if set, ok := c.sets[staffID]; ok {
		return set, nil
	}

	instants, err := c.provider.GetStaffAvailability(ctx, staffID, c.locationID, c.date)
	if err != nil {
		return nil, err
	}

	set := timegrid.NewInstantSet(instants, c.step)
	c.sets[staffID] = set
	return set, nil
}
