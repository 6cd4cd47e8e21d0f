package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type CharacterComponentSpec struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	JumpSpeed       float64 `yaml:"jump_speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Color  YAMLColor `yaml:"color"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Layer  int       `yaml:"layer"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type PhysicsBodyComponentSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Mass               float64 `yaml:"mass"`
	Friction           float64 `yaml:"friction"`
	Elasticity         float64 `yaml:"elasticity"`
	Static             bool    `yaml:"static"`
	LockRotation       bool    `yaml:"lock_rotation"`
	ReportContacts     bool    `yaml:"report_contacts"`
	ScaleWithTransform bool    `yaml:"scale_with_transform"`
	DefaultWidth       float64 `yaml:"default_width"`
	DefaultHeight      float64 `yaml:"default_height"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

// LoadCharacterSpec reads only the character tuning block of a prefab.
func LoadCharacterSpec(filename string) (CharacterComponentSpec, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return CharacterComponentSpec{}, err
	}
	return DecodeComponentSpec[CharacterComponentSpec](spec.Components["character"])
}
