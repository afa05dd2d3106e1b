package system

import (
	"github.com/hollowdrift/hollowdrift/common"
	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// CameraSystem eases the camera transform toward its target entity.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.CameraComponent, func(e ecs.Entity, cam *component.Camera) {
		camTr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		target := ecs.Entity(cam.Target)
		if !w.IsAlive(target) {
			return
		}
		targetTr, ok := ecs.Get(w, target, component.TransformComponent)
		if !ok {
			return
		}

		t := common.Clamp(cam.Smoothness, 0, 1)
		if t == 0 {
			t = 1 // unsmoothed cameras snap
		}
		camTr.X = common.Lerp(camTr.X, targetTr.X, t)
		camTr.Y = common.Lerp(camTr.Y, targetTr.Y, t)
	})
}
