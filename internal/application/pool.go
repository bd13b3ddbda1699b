package application

import (
	"github.com/stefan-k/cobald/internal/domain"
	"github.com/stefan-k/cobald/internal/ports"
)

// ResourcePool presents one concurrency limit as a pool: the limit is the
// supply and running units count as both used and allocated.
type ResourcePool struct {
	resource domain.ResourceID
	limit    float64
	usage    float64
	demand   float64
}

var _ ports.Pool = (*ResourcePool)(nil)

func NewResourcePool(resource domain.ResourceID, limit, usage float64) *ResourcePool {
	return &ResourcePool{resource: resource, limit: limit, usage: usage, demand: limit}
}

func (p *ResourcePool) Resource() domain.ResourceID {
	return p.resource
}

func (p *ResourcePool) Supply() float64 {
	return p.limit
}

func (p *ResourcePool) Demand() float64 {
	return p.demand
}

func (p *ResourcePool) SetDemand(value float64) {
	p.demand = max(value, 0)
}

func (p *ResourcePool) Utilisation() float64 {
	if p.limit <= 0 {
		return 0
	}

	return clampFraction(p.usage / p.limit)
}

func (p *ResourcePool) Allocation() float64 {
	return p.Utilisation()
}

// ResourceGroup aggregates child pools. It owns the list of children but not
// the children themselves.
type ResourceGroup struct {
	children []ports.Pool
}

var _ ports.CompositePool = (*ResourceGroup)(nil)

func NewResourceGroup(children ...ports.Pool) *ResourceGroup {
	g := &ResourceGroup{}
	g.SetChildren(children)
	return g
}

func (g *ResourceGroup) Supply() float64 {
	var total float64
	for _, child := range g.children {
		total += child.Supply()
	}

	return total
}

func (g *ResourceGroup) Demand() float64 {
	var total float64
	for _, child := range g.children {
		total += child.Demand()
	}

	return total
}

// SetDemand splits value across children in proportion to their supply, or
// evenly when the group has no supply.
func (g *ResourceGroup) SetDemand(value float64) {
	if len(g.children) == 0 {
		return
	}

	supply := g.Supply()
	for _, child := range g.children {
		if supply <= 0 {
			child.SetDemand(value / float64(len(g.children)))
			continue
		}
		child.SetDemand(value * child.Supply() / supply)
	}
}

func (g *ResourceGroup) Utilisation() float64 {
	return g.weighted(ports.Pool.Utilisation)
}

func (g *ResourceGroup) Allocation() float64 {
	return g.weighted(ports.Pool.Allocation)
}

func (g *ResourceGroup) Children() []ports.Pool {
	children := make([]ports.Pool, len(g.children))
	copy(children, g.children)
	return children
}

func (g *ResourceGroup) SetChildren(children []ports.Pool) {
	g.children = make([]ports.Pool, len(children))
	copy(g.children, children)
}

func (g *ResourceGroup) weighted(fraction func(ports.Pool) float64) float64 {
	supply := g.Supply()
	if supply <= 0 {
		return 0
	}

	var total float64
	for _, child := range g.children {
		total += fraction(child) * child.Supply()
	}

	return clampFraction(total / supply)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
