package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec unmarshals a prefab YAML file into a spec struct.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// PlayerSpec tunes the player entity.
type PlayerSpec struct {
	Name      string     `yaml:"name"`
	MoveSpeed float64    `yaml:"move_speed"`
	JumpSpeed float64    `yaml:"jump_speed"`
	Body      BodySpec   `yaml:"body"`
	Sprite    SpriteSpec `yaml:"sprite"`
}

// LoadPlayerSpec reads player.yaml.
func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CameraSpec tunes the follow camera.
type CameraSpec struct {
	Name       string  `yaml:"name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

// LoadCameraSpec reads camera.yaml.
func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PropSpec describes one spawnable prop: its body, look, and optional
// scripted reaction or pickup role. Props are referenced from level entity
// placements by name.
type PropSpec struct {
	Name     string      `yaml:"name"`
	Body     BodySpec    `yaml:"body"`
	Sprite   SpriteSpec  `yaml:"sprite"`
	Reaction string      `yaml:"reaction"`
	Once     bool        `yaml:"once"`
	Pickup   *PickupSpec `yaml:"pickup"`
}

// PropsSpec is the full prop catalog.
type PropsSpec struct {
	Props []PropSpec `yaml:"props"`
}

// LoadPropSpecs reads props.yaml and indexes the catalog by name.
func LoadPropSpecs() (map[string]PropSpec, error) {
	spec, err := LoadSpec[PropsSpec]("props.yaml")
	if err != nil {
		return nil, err
	}
	byName := make(map[string]PropSpec, len(spec.Props))
	for _, p := range spec.Props {
		if p.Name == "" {
			return nil, fmt.Errorf("prefabs: props.yaml: prop with empty name")
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("prefabs: props.yaml: duplicate prop %q", p.Name)
		}
		byName[p.Name] = p
	}
	return byName, nil
}

// BodySpec configures a physics body.
type BodySpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	FixedRotation bool    `yaml:"fixed_rotation"`
	Sensor        bool    `yaml:"sensor"`
	Static        bool    `yaml:"static"`
}

// SpriteSpec configures a solid-color sprite quad.
type SpriteSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
	Layer  int     `yaml:"layer"`
}

// PickupSpec marks a prop as collectible.
type PickupSpec struct {
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}
