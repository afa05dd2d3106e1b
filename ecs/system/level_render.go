package system

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowdrift/hollowdrift/common"
	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
	"github.com/hollowdrift/hollowdrift/levels"
)

// LevelRenderSystem draws the tile map behind the sprite pass.
type LevelRenderSystem struct {
	level *levels.Level
	quad  *ebiten.Image
	tints []color.NRGBA
}

func NewLevelRenderSystem(level *levels.Level) *LevelRenderSystem {
	quad := ebiten.NewImage(1, 1)
	quad.Fill(color.White)

	tints := make([]color.NRGBA, len(level.Layers))
	for i := range level.Layers {
		c, err := levels.ParseColor(level.Meta(i).Color)
		if err != nil {
			log.Printf("levels: layer %d: %v", i, err)
			c = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
		}
		tints[i] = c
	}
	return &LevelRenderSystem{level: level, quad: quad, tints: tints}
}

func (s *LevelRenderSystem) Update(*ecs.World) {}

func (s *LevelRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	if e, ok := w.First(component.CameraComponent.Kind()); ok {
		if tr, ok := ecs.Get(w, e, component.TransformComponent); ok {
			camX, camY = tr.X, tr.Y
		}
		if cam, ok := ecs.Get(w, e, component.CameraComponent); ok && cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	}

	for li := range s.level.Layers {
		for y := 0; y < s.level.Height; y++ {
			for x := 0; x < s.level.Width; x++ {
				if s.level.Tile(li, x, y) == 0 {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(levels.TileSize, levels.TileSize)
				op.GeoM.Translate(float64(x)*levels.TileSize-camX, float64(y)*levels.TileSize-camY)
				op.GeoM.Scale(zoom, zoom)
				op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2)
				op.ColorScale.ScaleWithColor(s.tints[li])
				screen.DrawImage(s.quad, op)
			}
		}
	}
}
