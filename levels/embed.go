package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// TileSize is the world size of one tile in pixels.
const TileSize = 32

// Level is a tile map stored as JSON. Layers are flat row-major arrays of
// length Width*Height; a non-zero cell is a tile. Layer 0 draws first.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`

	// Player spawn in tile coordinates.
	SpawnX int `json:"spawn_x,omitempty"`
	SpawnY int `json:"spawn_y,omitempty"`

	// Entities are prefab placements: props, pickups, triggers.
	Entities []Placement `json:"entities,omitempty"`
}

// LayerMeta describes one layer's physics participation and tile color.
type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color"`
}

// Placement positions a prefab in the level, in tile coordinates.
type Placement struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Load reads an embedded level by basename; the .json extension is optional.
func Load(name string) (*Level, error) {
	clean := filepath.ToSlash(name)
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", clean, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", clean, err)
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d cells, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// Tile returns the cell value of a layer at tile coordinates, 0 when out of
// bounds.
func (l *Level) Tile(layer, x, y int) int {
	if layer < 0 || layer >= len(l.Layers) || x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0
	}
	return l.Layers[layer][y*l.Width+x]
}

// Meta returns a layer's metadata, with defaults for missing entries.
func (l *Level) Meta(layer int) LayerMeta {
	if layer < 0 || layer >= len(l.LayerMeta) {
		return LayerMeta{Physics: true, Color: "#888888"}
	}
	return l.LayerMeta[layer]
}

// SpawnPosition returns the player spawn in world pixels, centered on the
// spawn tile.
func (l *Level) SpawnPosition() (float64, float64) {
	return float64(l.SpawnX)*TileSize + TileSize/2, float64(l.SpawnY)*TileSize + TileSize/2
}

// SolidRuns merges each physics layer's tiles into horizontal runs and
// reports them as world-pixel boxes {x, y, w, h}, keeping static shape
// counts down.
func (l *Level) SolidRuns() [][4]float64 {
	var runs [][4]float64
	for li := range l.Layers {
		if !l.Meta(li).Physics {
			continue
		}
		for y := 0; y < l.Height; y++ {
			x := 0
			for x < l.Width {
				if l.Tile(li, x, y) == 0 {
					x++
					continue
				}
				start := x
				for x < l.Width && l.Tile(li, x, y) != 0 {
					x++
				}
				runs = append(runs, [4]float64{
					float64(start) * TileSize,
					float64(y) * TileSize,
					float64(x-start) * TileSize,
					TileSize,
				})
			}
		}
	}
	return runs
}

// ParseColor parses a #RRGGBB or #RRGGBBAA hex color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("levels: bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("levels: bad color %q: %w", s, err)
	}
	c := color.NRGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
