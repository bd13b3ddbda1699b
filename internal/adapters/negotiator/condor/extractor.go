package condor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stefan-k/cobald/internal/domain"
)

// Extract parses "key = value" lines. Lines whose key the normalizer rejects
// are skipped; an accepted key with a non-numeric value fails the whole batch.
// Values beyond the float64 range are kept as ±Inf.
func Extract(lines []string, normalizer KeyNormalizer) (map[domain.ResourceID]float64, error) {
	values := make(map[domain.ResourceID]float64, len(lines))
	for i, line := range lines {
		rawKey, rawValue, _ := strings.Cut(line, "=")
		rawKey = strings.TrimSpace(rawKey)

		resource, ok := normalizer.NormalizeKey(rawKey)
		if !ok {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: line %d key %q: %w", domain.ErrMalformedValue, i+1, rawKey, err)
		}

		values[resource] = value
	}

	return values, nil
}
