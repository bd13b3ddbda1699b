package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stefan-k/cobald/internal/ports"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidLimit = errors.New("invalid limit")

type Service struct {
	constraints ports.ConstraintView
	usage       ports.UsageView
	plans       ports.PlanRepository
	pool        string
}

func NewService(constraints ports.ConstraintView, usage ports.UsageView, plans ports.PlanRepository, pool string) *Service {
	return &Service{
		constraints: constraints,
		usage:       usage,
		plans:       plans,
		pool:        pool,
	}
}

func (s *Service) GetLimit(ctx context.Context, resource domain.ResourceID) (float64, error) {
	value, err := s.constraints.Get(ctx, resource)
	if err != nil {
		return 0, fmt.Errorf("get limit: %w", err)
	}

	return value, nil
}

// SetLimit validates the request and hands it to the constraint view. The
// write itself is best effort and never reports a negotiator failure.
func (s *Service) SetLimit(ctx context.Context, resource domain.ResourceID, value float64) error {
	if err := validateLimit(resource, value); err != nil {
		return err
	}

	s.constraints.Set(ctx, resource, value)
	return nil
}

func (s *Service) ListLimits(ctx context.Context) ([]ResourceValue, error) {
	values, err := s.constraints.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("list limits: %w", err)
	}

	return sortedValues(values), nil
}

func (s *Service) GetUsage(ctx context.Context, resource domain.ResourceID) (float64, error) {
	value, err := s.usage.Get(ctx, resource)
	if err != nil {
		return 0, fmt.Errorf("get usage: %w", err)
	}

	return value, nil
}

func (s *Service) ListUsage(ctx context.Context) ([]ResourceValue, error) {
	values, err := s.usage.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usage: %w", err)
	}

	return sortedValues(values), nil
}

// Status resolves limit and usage for each resource. Without resources it
// reports every resource either view knows about.
func (s *Service) Status(ctx context.Context, resources []domain.ResourceID) (StatusReport, error) {
	var limits, usage map[domain.ResourceID]float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		limits, err = s.constraints.Dump(gctx)
		if err != nil {
			return fmt.Errorf("list limits: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		usage, err = s.usage.Dump(gctx)
		if err != nil {
			return fmt.Errorf("list usage: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return StatusReport{}, err
	}

	if len(resources) == 0 {
		resources = knownResources(limits, usage)
	}

	report := StatusReport{Pool: s.pool, Resources: make([]ResourceStatus, 0, len(resources))}
	pools := make([]ports.Pool, 0, len(resources))
	for _, resource := range resources {
		status := ResourceStatus{Resource: resource}

		limit, err := s.constraints.Get(ctx, resource)
		switch {
		case errors.Is(err, domain.ErrResourceNotFound):
			status.Unlimited = true
		case err != nil:
			return StatusReport{}, fmt.Errorf("get limit: %w", err)
		default:
			status.Limit = limit
		}

		used, err := s.usage.Get(ctx, resource)
		if err != nil && !errors.Is(err, domain.ErrResourceNotFound) {
			return StatusReport{}, fmt.Errorf("get usage: %w", err)
		}
		status.Usage = used

		if !status.Unlimited {
			pool := NewResourcePool(resource, status.Limit, status.Usage)
			status.Utilisation = pool.Utilisation()
			pools = append(pools, pool)
		}

		report.Resources = append(report.Resources, status)
	}

	group := NewResourceGroup(pools...)
	report.Total = TotalStatus{
		Supply:      group.Supply(),
		Demand:      group.Demand(),
		Utilisation: group.Utilisation(),
		Allocation:  group.Allocation(),
	}

	return report, nil
}

// ApplyPlan pushes every limit of the plan at path, in order.
func (s *Service) ApplyPlan(ctx context.Context, path string) (domain.LimitPlan, error) {
	plan, err := s.plans.Load(ctx, path)
	if err != nil {
		return domain.LimitPlan{}, fmt.Errorf("load limit plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return domain.LimitPlan{}, fmt.Errorf("validate limit plan: %w", err)
	}
	if plan.Pool != "" && plan.Pool != s.pool {
		return domain.LimitPlan{}, fmt.Errorf("limit plan targets pool %q, configured pool is %q", plan.Pool, s.pool)
	}

	for _, entry := range plan.Limits {
		if err := ctx.Err(); err != nil {
			return domain.LimitPlan{}, err
		}
		s.constraints.Set(ctx, entry.Resource, entry.Value)
	}

	return plan, nil
}

func (s *Service) ExportPlan(ctx context.Context, path string) (domain.LimitPlan, error) {
	limits, err := s.ListLimits(ctx)
	if err != nil {
		return domain.LimitPlan{}, err
	}

	plan := domain.LimitPlan{Pool: s.pool, Limits: make([]domain.LimitEntry, 0, len(limits))}
	for _, limit := range limits {
		plan.Limits = append(plan.Limits, domain.LimitEntry{Resource: limit.Resource, Value: limit.Value})
	}

	if err := s.plans.Save(ctx, path, plan); err != nil {
		return domain.LimitPlan{}, fmt.Errorf("save limit plan: %w", err)
	}

	return plan, nil
}

func validateLimit(resource domain.ResourceID, value float64) error {
	if strings.TrimSpace(string(resource)) == "" {
		return fmt.Errorf("%w: resource is required", ErrInvalidLimit)
	}
	if strings.ContainsAny(string(resource), " =\t\n") {
		return fmt.Errorf("%w: invalid resource name %q", ErrInvalidLimit, resource)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidLimit, value)
	}

	return nil
}

func sortedValues(values map[domain.ResourceID]float64) []ResourceValue {
	result := make([]ResourceValue, 0, len(values))
	for resource, value := range values {
		result = append(result, ResourceValue{Resource: resource, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Resource < result[j].Resource })

	return result
}

// knownResources merges both key sets. Usage keys spell subgroups with an
// underscore, so a usage key that matches a known limit is not listed twice.
func knownResources(limits, usage map[domain.ResourceID]float64) []domain.ResourceID {
	seen := make(map[domain.ResourceID]struct{}, len(limits)+len(usage))
	resources := make([]domain.ResourceID, 0, len(limits)+len(usage))
	for resource := range limits {
		seen[resource] = struct{}{}
		seen[domain.ResourceID(strings.ReplaceAll(string(resource), ".", "_"))] = struct{}{}
		resources = append(resources, resource)
	}
	for resource := range usage {
		if _, ok := seen[resource]; ok {
			continue
		}
		seen[resource] = struct{}{}
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i] < resources[j] })

	return resources
}
