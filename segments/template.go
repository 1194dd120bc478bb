package segments

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// Kind identifies what an entity blueprint is and how the resolver treats it.
// Unknown kinds are carried through untouched; they neither collide nor
// render.
type Kind string

const (
	KindPlatform Kind = "platform"
	KindSpike    Kind = "spike"
	KindBooster  Kind = "booster"
	KindOrb      Kind = "orb"
	KindPortal   Kind = "portal"
)

// Orientation is the facing of a spike's apex.
type Orientation string

const (
	OrientationUp   Orientation = "up"
	OrientationDown Orientation = "down"
)

// Props is the per-kind payload of a blueprint. Each variant carries only the
// fields its kind uses, with defaults already applied at decode time.
type Props interface{ isProps() }

type PlatformProps struct{}

type SpikeProps struct {
	Orientation Orientation
}

type BoosterProps struct {
	Multiplier   float64
	Duration     float64
	GravityScale float64
	Cooldown     float64
}

type OrbProps struct {
	Power    float64
	Cooldown float64
}

type PortalProps struct {
	Gravity  int
	Cooldown float64
}

func (PlatformProps) isProps() {}
func (SpikeProps) isProps()    {}
func (BoosterProps) isProps()  {}
func (OrbProps) isProps()      {}
func (PortalProps) isProps()   {}

// Blueprint is a single entity authored in a template, in segment-local
// coordinates. Rect kinds use X/Y as top-left with Width/Height; circle kinds
// use X/Y as center with Radius.
type Blueprint struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
	Radius        float64
	Props         Props
}

// Template is a fixed-width chunk of level geometry. Templates are read-only
// at runtime; live entity state lives on segment instances, never here.
type Template struct {
	Name       string
	Width      float64
	Blueprints []Blueprint

	gen *generator
}

// Build returns the blueprint list for a fresh segment instance. Generator
// templates produce their list procedurally from the given random source;
// script failures fall back to the static list.
func (t *Template) Build(rng *rand.Rand) []Blueprint {
	if t.gen != nil {
		bps, err := t.gen.run(t.Width, rng)
		if err == nil {
			return bps
		}
		log.Warn("segment generator failed, using static blueprints", "template", t.Name, "err", err)
	}
	return t.Blueprints
}
