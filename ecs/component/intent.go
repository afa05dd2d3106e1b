package component

// Intent is the per-frame gameplay input for a controlled entity, written
// by the intent system from the input facade. Gameplay systems read intents,
// never devices.
type Intent struct {
	MoveX, MoveY float64
	Jump         bool
	JumpPressed  bool
	Interact     bool
	InteractHeld bool
	LookDX       float64
	LookDY       float64
}

var IntentComponent = NewComponent[Intent]()
