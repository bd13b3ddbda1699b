package condor

import (
	"strings"

	"github.com/stefan-k/cobald/internal/domain"
)

const (
	limitSuffix = "_LIMIT"
	usagePrefix = "ConcurrencyLimit_"
	// Usage keys store subgroups with this separator instead of a dot.
	usageSeparator = "_"
)

// KeyNormalizer maps a raw negotiator key to a resource, or reports that the
// key does not name one.
type KeyNormalizer interface {
	NormalizeKey(raw string) (domain.ResourceID, bool)
}

// SuffixNormalizer accepts keys such as "GPU_LIMIT". The suffix is matched
// case-insensitively and the prefix is kept verbatim.
type SuffixNormalizer struct {
	Suffix string
}

func (n SuffixNormalizer) NormalizeKey(raw string) (domain.ResourceID, bool) {
	if len(raw) <= len(n.Suffix) {
		return "", false
	}

	split := len(raw) - len(n.Suffix)
	if !strings.EqualFold(raw[split:], n.Suffix) {
		return "", false
	}

	return domain.ResourceID(raw[:split]), true
}

// PrefixNormalizer accepts keys such as "ConcurrencyLimit_gpu" and replaces
// dots in the remainder with Separator.
type PrefixNormalizer struct {
	Prefix    string
	Separator string
}

func (n PrefixNormalizer) NormalizeKey(raw string) (domain.ResourceID, bool) {
	rest, ok := strings.CutPrefix(raw, n.Prefix)
	if !ok || rest == "" {
		return "", false
	}

	return domain.ResourceID(strings.ReplaceAll(rest, ".", n.Separator)), true
}
