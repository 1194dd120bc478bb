package segments

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults applied while decoding entity specs. Keeping them here means the
// resolver never has to guess at missing fields.
const (
	defaultBoosterMultiplier   = 1.25
	defaultBoosterDuration     = 1.0
	defaultBoosterGravityScale = 0.6
	defaultOrbPower            = 640
	defaultOrbCooldown         = 0.3
	defaultOrbRadius           = 26
	defaultPortalGravity       = -1
	defaultPortalCooldown      = 0.8
)

type templateSpec struct {
	Name      string       `yaml:"name"`
	Width     float64      `yaml:"width"`
	Generator string       `yaml:"generator"`
	Entities  []entitySpec `yaml:"entities"`
}

type entitySpec struct {
	Type         string  `yaml:"type"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Radius       float64 `yaml:"radius"`
	Orientation  string  `yaml:"orientation"`
	Multiplier   float64 `yaml:"multiplier"`
	Duration     float64 `yaml:"duration"`
	GravityScale float64 `yaml:"gravity_scale"`
	Power        float64 `yaml:"power"`
	Gravity      int     `yaml:"gravity"`
	Cooldown     float64 `yaml:"cooldown"`
}

func parseTemplate(name string, data []byte) (*Template, error) {
	var spec templateSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("segments: unmarshal %s: %w", name, err)
	}
	if spec.Width <= 0 {
		return nil, fmt.Errorf("segments: template %s has no width", name)
	}
	t := &Template{
		Name:  spec.Name,
		Width: spec.Width,
	}
	if t.Name == "" {
		t.Name = name
	}
	for _, es := range spec.Entities {
		t.Blueprints = append(t.Blueprints, blueprintFromSpec(es))
	}
	if spec.Generator != "" {
		gen, err := newGenerator(spec.Generator)
		if err != nil {
			return nil, fmt.Errorf("segments: template %s: %w", name, err)
		}
		t.gen = gen
	}
	return t, nil
}

// blueprintFromSpec converts one authored entity into a blueprint, applying
// per-kind defaults. Unknown types keep their raw kind and a nil Props; the
// resolver and renderer treat them as a no-op pass.
func blueprintFromSpec(es entitySpec) Blueprint {
	bp := Blueprint{
		Kind:   Kind(es.Type),
		X:      es.X,
		Y:      es.Y,
		Width:  es.Width,
		Height: es.Height,
		Radius: es.Radius,
	}

	switch bp.Kind {
	case KindPlatform:
		bp.Props = PlatformProps{}
	case KindSpike:
		orientation := Orientation(es.Orientation)
		if orientation != OrientationDown {
			orientation = OrientationUp
		}
		bp.Props = SpikeProps{Orientation: orientation}
	case KindBooster:
		props := BoosterProps{
			Multiplier:   es.Multiplier,
			Duration:     es.Duration,
			GravityScale: es.GravityScale,
			Cooldown:     es.Cooldown,
		}
		if props.Multiplier <= 0 {
			props.Multiplier = defaultBoosterMultiplier
		}
		if props.Duration <= 0 {
			props.Duration = defaultBoosterDuration
		}
		if props.GravityScale <= 0 {
			props.GravityScale = defaultBoosterGravityScale
		}
		if props.Cooldown <= 0 {
			props.Cooldown = props.Duration
		}
		bp.Props = props
	case KindOrb:
		props := OrbProps{
			Power:    es.Power,
			Cooldown: es.Cooldown,
		}
		if props.Power <= 0 {
			props.Power = defaultOrbPower
		}
		if props.Cooldown <= 0 {
			props.Cooldown = defaultOrbCooldown
		}
		if bp.Radius <= 0 {
			bp.Radius = defaultOrbRadius
		}
		bp.Props = props
	case KindPortal:
		props := PortalProps{
			Gravity:  es.Gravity,
			Cooldown: es.Cooldown,
		}
		if props.Gravity != 1 && props.Gravity != -1 {
			props.Gravity = defaultPortalGravity
		}
		if props.Cooldown <= 0 {
			props.Cooldown = defaultPortalCooldown
		}
		bp.Props = props
	}
	return bp
}
