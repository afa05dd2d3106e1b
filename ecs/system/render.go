package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowdrift/hollowdrift/common"
	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// RenderSystem draws sprite quads through the camera transform.
type RenderSystem struct {
	camEntity ecs.Entity
	quad      *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	quad := ebiten.NewImage(1, 1)
	quad.Fill(color.White)
	return &RenderSystem{quad: quad}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if e, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = e
		}
	}
	if camTr, ok := ecs.Get(w, r.camEntity, component.TransformComponent); ok {
		camX, camY = camTr.X, camTr.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if sp, ok := ecs.Get(w, entities[i], component.SpriteComponent); ok {
			li = sp.Layer
		}
		if sp, ok := ecs.Get(w, entities[j], component.SpriteComponent); ok {
			lj = sp.Layer
		}
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		sp, _ := ecs.Get(w, e, component.SpriteComponent)
		if tr == nil || sp == nil || sp.Width <= 0 || sp.Height <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sp.Width, sp.Height)
		op.GeoM.Translate(-sp.Width/2, -sp.Height/2)
		op.GeoM.Rotate(tr.Rotation)
		op.GeoM.Translate(tr.X-camX, tr.Y-camY)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2)
		op.ColorScale.ScaleWithColor(sp.Color)
		screen.DrawImage(r.quad, op)
	}
}
