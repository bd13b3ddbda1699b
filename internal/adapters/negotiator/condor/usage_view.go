package condor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stefan-k/cobald/internal/ports"
)

// UsageView is a read-only view of the concurrency usage the negotiator reports.
type UsageView struct {
	runner     ports.CommandRunner
	opts       options
	cache      *ttlCache
	normalizer KeyNormalizer
}

var _ ports.UsageView = (*UsageView)(nil)

func NewUsageView(runner ports.CommandRunner, opts ...Option) *UsageView {
	v := &UsageView{
		runner:     runner,
		opts:       newOptions(opts),
		normalizer: PrefixNormalizer{Prefix: usagePrefix, Separator: usageSeparator},
	}
	v.cache = newTTLCache(v.opts, v.query)

	return v
}

// Get returns the usage of resource. The negotiator reports subgroups with an
// underscore, so "gpu.mem" is looked up as "gpu_mem" before falling back to "gpu".
func (v *UsageView) Get(ctx context.Context, resource domain.ResourceID) (float64, error) {
	primary := domain.ResourceID(strings.ReplaceAll(string(resource), ".", usageSeparator))
	return v.cache.lookup(ctx, primary, resource)
}

func (v *UsageView) Dump(ctx context.Context) (map[domain.ResourceID]float64, error) {
	return v.cache.dump(ctx)
}

func (v *UsageView) Pool() string {
	return v.opts.pool
}

func (v *UsageView) String() string {
	values, err := v.Dump(context.Background())
	if err != nil {
		return fmt.Sprintf("%s<error: %v>", v.GoString(), err)
	}

	return formatValues(values)
}

func (v *UsageView) GoString() string {
	return describe("UsageView", v.opts)
}

func (v *UsageView) query(ctx context.Context) (map[domain.ResourceID]float64, error) {
	argv := v.opts.withPool([]string{v.opts.userprioBinary, "-negotiator", "-long"})

	lines, err := v.runner.Query(ctx, argv)
	if err != nil {
		return nil, err
	}

	return Extract(lines, v.normalizer)
}

func describe(kind string, o options) string {
	return fmt.Sprintf("%s(pool=%s, max_age=%s)", kind, o.pool, o.maxAge)
}

func formatValues(values map[domain.ResourceID]float64) string {
	keys := make([]string, 0, len(values))
	for id := range values {
		keys = append(keys, string(id))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s:%g", key, values[domain.ResourceID(key)]))
	}

	return "map[" + strings.Join(parts, " ") + "]"
}
