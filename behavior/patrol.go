package behavior

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/prefabs"
)

// Patrol is the route a scripted entity cycles through.
type Patrol struct {
	Points   []physics.Vector
	Speed    float64
	StopTime int
}

// LoadPatrol runs the named script and reads its patrol globals. The origin
// is exposed to the script as origin_x/origin_y so routes can be authored
// relative to the entity's placement in the level.
func LoadPatrol(name string, origin physics.Vector) (*Patrol, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("behavior: load %s: %w", name, err)
	}

	p, err := Parse(src, origin)
	if err != nil {
		return nil, fmt.Errorf("behavior: %s: %w", name, err)
	}

	return p, nil
}

// Parse evaluates patrol script source. The script must define a `points`
// global holding [x, y] pairs; `speed` and `stop_time` are optional.
func Parse(src []byte, origin physics.Vector) (*Patrol, error) {
	script := tengo.NewScript(src)
	_ = script.Add("origin_x", origin.X)
	_ = script.Add("origin_y", origin.Y)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	if !compiled.IsDefined("points") {
		return nil, fmt.Errorf("script defines no points")
	}

	p := &Patrol{}
	for i, raw := range compiled.Get("points").Array() {
		pair, ok := raw.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("points[%d]: want an [x, y] pair", i)
		}

		x, okX := asFloat(pair[0])
		y, okY := asFloat(pair[1])
		if !okX || !okY {
			return nil, fmt.Errorf("points[%d]: non-numeric coordinate", i)
		}

		p.Points = append(p.Points, physics.Vector{X: x, Y: y})
	}

	if len(p.Points) == 0 {
		return nil, fmt.Errorf("script defines no points")
	}

	if compiled.IsDefined("speed") {
		p.Speed = compiled.Get("speed").Float()
	}
	if compiled.IsDefined("stop_time") {
		p.StopTime = compiled.Get("stop_time").Int()
	}

	return p, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
