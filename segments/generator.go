package segments

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// generator wraps a compiled tengo script that emits blueprints. Scripts get
// the segment width as __width and a seeded __rand() so a generated sequence
// is reproducible for a given run seed. The script must leave a global
// `entities` array of maps in the same shape as the yaml entity spec.
type generator struct {
	path     string
	compiled *tengo.Compiled
}

func newGenerator(path string) (*generator, error) {
	src, err := loadScript(path)
	if err != nil {
		return nil, fmt.Errorf("load generator %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("__width", 0.0)
	_ = script.Add("__rand", &tengo.UserFunction{Name: "rand"})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile generator %s: %w", path, err)
	}
	return &generator{path: path, compiled: compiled}, nil
}

func (g *generator) run(width float64, rng *rand.Rand) ([]Blueprint, error) {
	if g == nil || g.compiled == nil {
		return nil, fmt.Errorf("nil generator")
	}
	if err := g.compiled.Set("__width", width); err != nil {
		return nil, err
	}
	randFn := &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: rng.Float64()}, nil
	}}
	if err := g.compiled.Set("__rand", randFn); err != nil {
		return nil, err
	}
	if err := g.compiled.Run(); err != nil {
		return nil, fmt.Errorf("run generator %s: %w", g.path, err)
	}
	if !g.compiled.IsDefined("entities") {
		return nil, fmt.Errorf("generator %s defines no entities", g.path)
	}

	raw, ok := g.compiled.Get("entities").Value().([]any)
	if !ok {
		return nil, fmt.Errorf("generator %s: entities is not an array", g.path)
	}
	bps := make([]Blueprint, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		bps = append(bps, blueprintFromSpec(specFromMap(m)))
	}
	return bps, nil
}

func specFromMap(m map[string]any) entitySpec {
	es := entitySpec{
		Type:         asString(m["type"]),
		X:            asFloat(m["x"]),
		Y:            asFloat(m["y"]),
		Width:        asFloat(m["width"]),
		Height:       asFloat(m["height"]),
		Radius:       asFloat(m["radius"]),
		Orientation:  asString(m["orientation"]),
		Multiplier:   asFloat(m["multiplier"]),
		Duration:     asFloat(m["duration"]),
		GravityScale: asFloat(m["gravity_scale"]),
		Power:        asFloat(m["power"]),
		Gravity:      int(asFloat(m["gravity"])),
		Cooldown:     asFloat(m["cooldown"]),
	}
	return es
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
