package system

import (
	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
	"github.com/hollowdrift/hollowdrift/input"
)

// Action names served by the gameplay input context.
const (
	ActionMove     = "Move"
	ActionJump     = "Jump"
	ActionInteract = "Interact"
	ActionLook     = "Look"
	ActionPause    = "Pause"
)

// IntentSystem copies the frame's resolved actions from the input facade
// into Intent components. It is the only system that touches the input
// layer; everything downstream reads intents.
type IntentSystem struct {
	mgr *input.Manager
}

func NewIntentSystem(mgr *input.Manager) *IntentSystem {
	return &IntentSystem{mgr: mgr}
}

func (s *IntentSystem) Update(w *ecs.World) {
	if s.mgr == nil {
		return
	}

	moveX, moveY := s.mgr.GetAxis2D(ActionMove)
	jump := s.mgr.GetButton(ActionJump)
	jumpPressed := s.mgr.WasButtonPressed(ActionJump)
	interact := s.mgr.WasButtonPressed(ActionInteract)
	interactHeld := s.mgr.GetButton(ActionInteract)
	lookDX, lookDY := s.mgr.GetAxis2D(ActionLook)

	ecs.ForEach(w, component.IntentComponent, func(_ ecs.Entity, in *component.Intent) {
		in.MoveX = moveX
		in.MoveY = moveY
		in.Jump = jump
		in.JumpPressed = jumpPressed
		in.Interact = interact
		in.InteractHeld = interactHeld
		in.LookDX = lookDX
		in.LookDY = lookDY
	})
}
