package prefabs

import (
	"strings"
	"testing"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.MoveSpeed <= 0 || spec.JumpSpeed <= 0 {
		t.Fatalf("player speeds must be positive: move=%v jump=%v", spec.MoveSpeed, spec.JumpSpeed)
	}
	if spec.Body.Width <= 0 || spec.Body.Height <= 0 {
		t.Fatalf("player body must have size: %+v", spec.Body)
	}
	if !spec.Body.FixedRotation {
		t.Fatal("player body should not tumble")
	}
}

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if spec.Zoom <= 0 {
		t.Fatalf("camera zoom must be positive, got %v", spec.Zoom)
	}
	if spec.Smoothness < 0 || spec.Smoothness > 1 {
		t.Fatalf("camera smoothness out of range: %v", spec.Smoothness)
	}
}

func TestLoadPropSpecs(t *testing.T) {
	catalog, err := LoadPropSpecs()
	if err != nil {
		t.Fatalf("LoadPropSpecs: %v", err)
	}

	crate, ok := catalog["crate"]
	if !ok {
		t.Fatal("catalog must define crate")
	}
	if crate.Reaction == "" {
		t.Fatal("crate must carry a reaction script")
	}
	if _, err := LoadScript(crate.Reaction); err != nil {
		t.Fatalf("crate reaction %q not loadable: %v", crate.Reaction, err)
	}

	gem, ok := catalog["gem"]
	if !ok {
		t.Fatal("catalog must define gem")
	}
	if gem.Pickup == nil || gem.Pickup.Value <= 0 {
		t.Fatalf("gem must be a pickup with positive value: %+v", gem.Pickup)
	}
	if !gem.Body.Sensor {
		t.Fatal("pickups must use sensor bodies")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"crate.tengo", "scripts/crate.tengo"},
		{"scripts/crate.tengo", "scripts/crate.tengo"},
		{"prefabs/scripts/crate.tengo", "scripts/crate.tengo"},
	}
	for _, c := range cases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadMissingSpec(t *testing.T) {
	if _, err := Load("no_such.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
	if _, err := LoadSpec[PlayerSpec]("no_such.yaml"); err == nil {
		t.Fatal("expected error for missing spec")
	}
}

func TestLoadSpecRejectsMalformedYAML(t *testing.T) {
	// input.yaml parses as a generic map but not as a PlayerSpec with a
	// struct-typed field holding a sequence.
	_, err := LoadSpec[struct {
		Contexts string `yaml:"contexts"`
	}]("input.yaml")
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}
