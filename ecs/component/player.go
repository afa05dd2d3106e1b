package component

// Player holds movement tuning and ground state for the player entity.
type Player struct {
	MoveSpeed float64
	JumpSpeed float64
	Grounded  bool
	Score     int
}

var PlayerComponent = NewComponent[Player]()
