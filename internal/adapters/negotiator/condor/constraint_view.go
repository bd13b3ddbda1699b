package condor

import (
	"context"
	"fmt"

	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stefan-k/cobald/internal/ports"
	"go.uber.org/zap"
)

// ConstraintView reads and writes the concurrency limits of the negotiator.
type ConstraintView struct {
	runner     ports.CommandRunner
	opts       options
	cache      *ttlCache
	normalizer KeyNormalizer
	logger     *zap.Logger
}

var _ ports.ConstraintView = (*ConstraintView)(nil)

func NewConstraintView(runner ports.CommandRunner, opts ...Option) *ConstraintView {
	v := &ConstraintView{
		runner:     runner,
		opts:       newOptions(opts),
		normalizer: SuffixNormalizer{Suffix: limitSuffix},
	}
	v.cache = newTTLCache(v.opts, v.query)
	v.logger = v.opts.logger.With(zap.String("component", "constraints"), zap.String("pool", v.opts.pool))

	return v
}

func (v *ConstraintView) Get(ctx context.Context, resource domain.ResourceID) (float64, error) {
	return v.cache.lookup(ctx, resource, resource)
}

func (v *ConstraintView) Dump(ctx context.Context) (map[domain.ResourceID]float64, error) {
	return v.cache.dump(ctx)
}

// Set asks the negotiator to enforce value as the limit of resource. The
// negotiator only takes whole numbers, so value is truncated on the wire while
// the cache keeps it untouched until the next refresh. Failures are logged and
// leave the cache unchanged.
func (v *ConstraintView) Set(ctx context.Context, resource domain.ResourceID, value float64) {
	argv := v.opts.withPool([]string{v.opts.configValBinary, "-negotiator"})
	argv = append(argv, "-rset", fmt.Sprintf("%s%s = %d", resource, limitSuffix, int64(value)))

	ctx, cancel := context.WithTimeout(ctx, v.opts.reconfigureTimeout)
	defer cancel()

	if err := v.runner.Exec(ctx, argv); err != nil {
		v.logger.Error("failed to constrain resource",
			zap.String("resource", string(resource)),
			zap.Float64("limit", value),
			zap.Error(fmt.Errorf("%w: %w", domain.ErrReconfigureFailed, err)),
		)
		return
	}

	v.cache.put(resource, value)
}

func (v *ConstraintView) Pool() string {
	return v.opts.pool
}

func (v *ConstraintView) GoString() string {
	return describe("ConstraintView", v.opts)
}

func (v *ConstraintView) query(ctx context.Context) (map[domain.ResourceID]float64, error) {
	argv := v.opts.withPool([]string{v.opts.configValBinary, "-negotiator", "-dump", "LIMIT"})

	lines, err := v.runner.Query(ctx, argv)
	if err != nil {
		return nil, err
	}

	return Extract(lines, v.normalizer)
}
