package component

// Pickup marks a collectible prop.
type Pickup struct {
	Kind  string
	Value int
}

var PickupComponent = NewComponent[Pickup]()
