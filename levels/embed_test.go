package levels

import (
	"image/color"
	"testing"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	for _, name := range []string{"cavern", "cavern.json"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if lvl.Width <= 0 || lvl.Height <= 0 {
				t.Fatalf("bad dimensions %dx%d", lvl.Width, lvl.Height)
			}
			if len(lvl.Entities) == 0 {
				t.Fatal("expected entity placements")
			}
			x, y := lvl.SpawnPosition()
			if x != float64(lvl.SpawnX)*TileSize+TileSize/2 || y != float64(lvl.SpawnY)*TileSize+TileSize/2 {
				t.Fatalf("spawn not centered on tile: (%v, %v)", x, y)
			}
		})
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := Load("no_such_level"); err == nil {
		t.Fatal("expected error for missing level")
	}
}

func TestTileOutOfBounds(t *testing.T) {
	lvl := &Level{
		Width:  2,
		Height: 2,
		Layers: [][]int{{1, 0, 0, 1}},
	}

	cases := []struct {
		name        string
		layer, x, y int
		want        int
	}{
		{"in_bounds", 0, 0, 0, 1},
		{"in_bounds_zero", 0, 1, 0, 0},
		{"negative_x", 0, -1, 0, 0},
		{"x_past_width", 0, 2, 0, 0},
		{"y_past_height", 0, 0, 2, 0},
		{"missing_layer", 1, 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := lvl.Tile(c.layer, c.x, c.y); got != c.want {
				t.Fatalf("Tile(%d,%d,%d) = %d, want %d", c.layer, c.x, c.y, got, c.want)
			}
		})
	}
}

func TestSolidRunsMergesHorizontalSpans(t *testing.T) {
	lvl := &Level{
		Width:  4,
		Height: 2,
		Layers: [][]int{{
			1, 1, 0, 1,
			0, 0, 0, 0,
		}},
	}

	runs := lvl.SolidRuns()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %v", len(runs), runs)
	}
	want := [][4]float64{
		{0, 0, 2 * TileSize, TileSize},
		{3 * TileSize, 0, TileSize, TileSize},
	}
	for i, r := range runs {
		if r != want[i] {
			t.Fatalf("run %d = %v, want %v", i, r, want[i])
		}
	}
}

func TestSolidRunsSkipsNonPhysicsLayers(t *testing.T) {
	lvl := &Level{
		Width:     2,
		Height:    1,
		Layers:    [][]int{{1, 1}},
		LayerMeta: []LayerMeta{{Physics: false, Color: "#101010"}},
	}
	if runs := lvl.SolidRuns(); len(runs) != 0 {
		t.Fatalf("decorative layer must not produce colliders, got %v", runs)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#ff8000", want: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{in: "ff8000", want: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{in: "#10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: " #ffffff ", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q): expected error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}
