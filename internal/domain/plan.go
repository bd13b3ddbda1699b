package domain

import (
	"fmt"
	"math"
	"strings"
)

type LimitEntry struct {
	Resource ResourceID
	Value    float64
}

// LimitPlan is an ordered set of limits to push to the negotiator.
type LimitPlan struct {
	Pool   string
	Limits []LimitEntry
}

func (p LimitPlan) Validate() error {
	seen := make(map[ResourceID]struct{}, len(p.Limits))
	for i, entry := range p.Limits {
		if strings.TrimSpace(string(entry.Resource)) == "" {
			return fmt.Errorf("limit %d: resource is required", i)
		}
		if strings.ContainsAny(string(entry.Resource), " =\t\n") {
			return fmt.Errorf("limit %d: invalid resource name %q", i, entry.Resource)
		}
		if math.IsNaN(entry.Value) || math.IsInf(entry.Value, 0) || entry.Value < 0 {
			return fmt.Errorf("limit %d: invalid value %v for %q", i, entry.Value, entry.Resource)
		}
		if _, ok := seen[entry.Resource]; ok {
			return fmt.Errorf("limit %d: duplicate resource %q", i, entry.Resource)
		}
		seen[entry.Resource] = struct{}{}
	}

	return nil
}
