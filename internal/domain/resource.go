package domain

import (
	"strings"
	"time"
)

// ResourceID names a concurrency limit group. Subgroups are dotted, e.g. "gpu.mem".
type ResourceID string

// ParentGroup returns the text before the first dot. Only one level is
// stripped: "a.b.c" yields "a".
func (r ResourceID) ParentGroup() (ResourceID, bool) {
	parent, _, found := strings.Cut(string(r), ".")
	if !found {
		return "", false
	}

	return ResourceID(parent), true
}

type Snapshot struct {
	Values     map[ResourceID]float64
	ValidUntil time.Time
}

func (s Snapshot) IsStale(now time.Time) bool {
	return !now.Before(s.ValidUntil)
}

// Resolve looks up primary, then falls back to the parent group of requested.
func (s Snapshot) Resolve(primary, requested ResourceID) (float64, bool) {
	if value, ok := s.Values[primary]; ok {
		return value, true
	}

	parent, ok := requested.ParentGroup()
	if !ok {
		return 0, false
	}

	value, ok := s.Values[parent]
	return value, ok
}

// Copy returns the values in a map the caller may modify.
func (s Snapshot) Copy() map[ResourceID]float64 {
	values := make(map[ResourceID]float64, len(s.Values))
	for id, value := range s.Values {
		values[id] = value
	}

	return values
}
