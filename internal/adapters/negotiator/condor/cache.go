package condor

import (
	"context"
	"fmt"
	"time"

	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stefan-k/cobald/internal/ports"
)

type refreshFunc func(ctx context.Context) (map[domain.ResourceID]float64, error)

// ttlCache refreshes its snapshot synchronously on the first read after it
// went stale. It is not safe for concurrent use.
type ttlCache struct {
	snapshot     domain.Snapshot
	clock        ports.Clock
	maxAge       time.Duration
	queryTimeout time.Duration
	refresh      refreshFunc
}

func newTTLCache(o options, refresh refreshFunc) *ttlCache {
	return &ttlCache{
		snapshot:     domain.Snapshot{Values: map[domain.ResourceID]float64{}},
		clock:        o.clock,
		maxAge:       o.maxAge,
		queryTimeout: o.queryTimeout,
		refresh:      refresh,
	}
}

func (c *ttlCache) ensureFresh(ctx context.Context) error {
	if !c.snapshot.IsStale(c.clock.Now()) {
		return nil
	}

	if c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	values, err := c.refresh(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}

	c.snapshot = domain.Snapshot{
		Values:     values,
		ValidUntil: c.clock.Now().Add(c.maxAge),
	}

	return nil
}

func (c *ttlCache) lookup(ctx context.Context, primary, requested domain.ResourceID) (float64, error) {
	if err := c.ensureFresh(ctx); err != nil {
		return 0, err
	}

	value, ok := c.snapshot.Resolve(primary, requested)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrResourceNotFound, requested)
	}

	return value, nil
}

func (c *ttlCache) dump(ctx context.Context) (map[domain.ResourceID]float64, error) {
	if err := c.ensureFresh(ctx); err != nil {
		return nil, err
	}

	return c.snapshot.Copy(), nil
}

// put updates one entry without extending the snapshot's validity.
func (c *ttlCache) put(resource domain.ResourceID, value float64) {
	if c.snapshot.Values == nil {
		c.snapshot.Values = map[domain.ResourceID]float64{}
	}
	c.snapshot.Values[resource] = value
}
