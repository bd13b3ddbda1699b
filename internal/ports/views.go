package ports

import (
	"context"

	"github.com/stefan-k/cobald/internal/domain"
)

type UsageView interface {
	Get(ctx context.Context, resource domain.ResourceID) (float64, error)
	Dump(ctx context.Context) (map[domain.ResourceID]float64, error)
}

// ConstraintView writes are best effort: Set never reports failure.
type ConstraintView interface {
	Get(ctx context.Context, resource domain.ResourceID) (float64, error)
	Dump(ctx context.Context) (map[domain.ResourceID]float64, error)
	Set(ctx context.Context, resource domain.ResourceID, value float64)
}

type PlanRepository interface {
	Load(ctx context.Context, path string) (domain.LimitPlan, error)
	Save(ctx context.Context, path string, plan domain.LimitPlan) error
}
