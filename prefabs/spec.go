package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/platformkit/physics"
)

// LoadSpec loads and unmarshals a YAML spec file into T.
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

// VectorSpec is a 2D value in spec files.
type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() physics.Vector {
	return physics.Vector{X: v.X, Y: v.Y}
}

// PhysicsSpec holds the engine tunables every entity steps with.
type PhysicsSpec struct {
	Gravity              VectorSpec `yaml:"gravity"`
	MinSpeed             VectorSpec `yaml:"min_speed"`
	RampContactThreshold float64    `yaml:"ramp_contact_threshold"`
	RampSlipThreshold    float64    `yaml:"ramp_slip_threshold"`
	RampSlipForce        float64    `yaml:"ramp_slip_force"`
}

// Config converts the spec to the engine's config value.
func (s PhysicsSpec) Config() physics.Config {
	return physics.Config{
		Gravity:              s.Gravity.Vector(),
		MinSpeed:             s.MinSpeed.Vector(),
		RampContactThreshold: s.RampContactThreshold,
		RampSlipThreshold:    s.RampSlipThreshold,
		RampSlipForce:        s.RampSlipForce,
	}
}

// LoadPhysicsSpec loads physics.yaml.
func LoadPhysicsSpec() (PhysicsSpec, error) {
	return LoadSpec[PhysicsSpec]("physics.yaml")
}

// BodySpec describes the movement state of one entity kind.
type BodySpec struct {
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Mass     float64    `yaml:"mass"`
	MaxSpeed VectorSpec `yaml:"max_speed"`
	Passable bool       `yaml:"passable"`
}

// ElevatorSpec describes a carrying platform.
type ElevatorSpec struct {
	Name   string   `yaml:"name"`
	Body   BodySpec `yaml:"body"`
	Speed  float64  `yaml:"speed"`
	Script string   `yaml:"script"`
}

func LoadElevatorSpec() (*ElevatorSpec, error) {
	spec, err := LoadSpec[ElevatorSpec]("elevator.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CrateSpec describes a pushable box.
type CrateSpec struct {
	Name string   `yaml:"name"`
	Body BodySpec `yaml:"body"`
}

func LoadCrateSpec() (*CrateSpec, error) {
	spec, err := LoadSpec[CrateSpec]("crate.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// WalkerSpec describes a patrolling entity.
type WalkerSpec struct {
	Name   string   `yaml:"name"`
	Body   BodySpec `yaml:"body"`
	Speed  float64  `yaml:"speed"`
	Script string   `yaml:"script"`
}

func LoadWalkerSpec() (*WalkerSpec, error) {
	spec, err := LoadSpec[WalkerSpec]("walker.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
