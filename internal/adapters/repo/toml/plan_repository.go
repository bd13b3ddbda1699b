package toml

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stefan-k/cobald/internal/ports"
)

const (
	planFileMode    = 0o644
	planDirMode     = 0o755
	tempFilePattern = ".plan-*.toml.tmp"
)

var ErrPlanNotFound = errors.New("limit plan not found")

type PlanRepository struct{}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PlanRepository = (*PlanRepository)(nil)

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

func (r *PlanRepository) Load(ctx context.Context, path string) (domain.LimitPlan, error) {
	if err := ctx.Err(); err != nil {
		return domain.LimitPlan{}, err
	}

	path, err := normalizePlanPath(path)
	if err != nil {
		return domain.LimitPlan{}, err
	}

	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.LimitPlan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, path)
		}
		return domain.LimitPlan{}, fmt.Errorf("read plan file: %w", err)
	}

	var file planSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.LimitPlan{}, fmt.Errorf("decode plan file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.LimitPlan{}, err
	}
	file.applyDefaults()

	return fromSchema(file)
}

func (r *PlanRepository) Save(ctx context.Context, path string, plan domain.LimitPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := normalizePlanPath(path)
	if err != nil {
		return err
	}

	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	return writeSchema(path, toSchema(plan))
}

func writeSchema(path string, file planSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), planDirMode); err != nil {
		return fmt.Errorf("create plan directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode plan file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp plan file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp plan file: %w", err)
	}

	if err := tempFile.Chmod(planFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp plan file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp plan file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace plan file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(plan domain.LimitPlan) planSchema {
	limits := make([]limitSchema, 0, len(plan.Limits))
	for _, entry := range plan.Limits {
		limits = append(limits, limitSchema{Resource: string(entry.Resource), Value: encodeValue(entry.Value)})
	}

	return planSchema{Version: currentSchemaVersion, Pool: plan.Pool, Limits: limits}
}

func fromSchema(file planSchema) (domain.LimitPlan, error) {
	plan := domain.LimitPlan{Pool: file.Pool, Limits: make([]domain.LimitEntry, 0, len(file.Limits))}
	for i, entry := range file.Limits {
		value, err := decodeValue(entry.Value)
		if err != nil {
			return domain.LimitPlan{}, fmt.Errorf("decode plan file: limit %d (%q): %w", i, entry.Resource, err)
		}
		plan.Limits = append(plan.Limits, domain.LimitEntry{Resource: domain.ResourceID(entry.Resource), Value: value})
	}

	return plan, nil
}

// encodeValue writes whole limits as TOML integers, which is what the
// negotiator enforces anyway.
func encodeValue(value float64) any {
	if value == math.Trunc(value) && math.Abs(value) < 1<<53 {
		return int64(value)
	}

	return value
}

func decodeValue(raw any) (float64, error) {
	switch v := raw.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case nil:
		return 0, errors.New("value is required")
	default:
		return 0, fmt.Errorf("value must be a number, got %T", raw)
	}
}

func normalizePlanPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("plan path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve plan path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
