package ports

// Pool is the surface a balancing controller drives.
type Pool interface {
	// Supply is the volume of resources provided by this pool.
	Supply() float64
	// Demand is the volume of resources to be provided by this pool.
	Demand() float64
	SetDemand(value float64)
	// Utilisation is the fraction of the supply which is actively used.
	Utilisation() float64
	// Allocation is the fraction of the supply which is assigned for usage.
	Allocation() float64
}

// CompositePool is a Pool made up of individual resource providers. The parent
// owns the list, not the children's resources.
type CompositePool interface {
	Pool
	Children() []Pool
	SetChildren(children []Pool)
}
