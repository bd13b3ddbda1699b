package application

import "github.com/stefan-k/cobald/internal/domain"

type ResourceValue struct {
	Resource domain.ResourceID
	Value    float64
}

type ResourceStatus struct {
	Resource  domain.ResourceID `json:"resource"`
	Limit     float64           `json:"limit"`
	Unlimited bool              `json:"unlimited"`
	Usage     float64           `json:"usage"`
	// Utilisation is usage/limit clamped to [0,1]; zero when unlimited.
	Utilisation float64 `json:"utilisation"`
}

type TotalStatus struct {
	Supply      float64 `json:"supply"`
	Demand      float64 `json:"demand"`
	Utilisation float64 `json:"utilisation"`
	Allocation  float64 `json:"allocation"`
}

type StatusReport struct {
	Pool      string           `json:"pool"`
	Resources []ResourceStatus `json:"resources"`
	Total     TotalStatus      `json:"total"`
}
