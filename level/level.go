package level

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/milk9111/platformkit/common"
	"github.com/milk9111/platformkit/physics"
)

// Tile values inside a layer.
const (
	TileEmpty     = 0
	TileSolid     = 1
	TileRampLeft  = 2 // surface rises leftward
	TileRampRight = 3 // surface rises rightward
)

// Level is a tile map stored as JSON. Each layer is a flat array of
// length Width*Height (row-major). Only layers whose meta has physics
// contribute collision geometry.
type Level struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Layers [][]int `json:"layers,omitempty"`

	// LayerMeta holds per-layer metadata: whether tiles on the layer
	// have physics and whether they form one-way platforms.
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`

	// player spawn in tile coordinates
	SpawnX int `json:"spawn_x,omitempty"`
	SpawnY int `json:"spawn_y,omitempty"`

	// Entities places movable objects in pixel coordinates.
	Entities []Placement `json:"entities,omitempty"`
}

type LayerMeta struct {
	HasPhysics bool `json:"has_physics"`
	Passable   bool `json:"passable,omitempty"`
}

// Placement positions one movable object.
type Placement struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"` // crate, elevator, walker, prop
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Prefab string  `json:"prefab,omitempty"`
	Script string  `json:"script,omitempty"`
}

// Load loads a level from a JSON file at path.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates level JSON.
func Parse(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level: invalid dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("level: layer %d has %d tiles, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}

// SpawnPosition returns the player spawn in pixel coordinates.
func (l *Level) SpawnPosition() physics.Vector {
	return physics.Vector{
		X: float64(l.SpawnX * common.TileSize),
		Y: float64(l.SpawnY * common.TileSize),
	}
}

// Geometry builds the static collision geometry for every physics
// layer. Contiguous solid tiles are merged into maximal rectangles so
// the broad phase scans fewer, larger blocks instead of one per tile;
// ramp tiles stay individual triangles.
func (l *Level) Geometry() ([]*physics.Block, []*physics.Ramp) {
	var blocks []*physics.Block
	var ramps []*physics.Ramp

	for layerIdx, layer := range l.Layers {
		if l.LayerMeta == nil || layerIdx >= len(l.LayerMeta) || !l.LayerMeta[layerIdx].HasPhysics {
			continue
		}
		passable := l.LayerMeta[layerIdx].Passable

		processed := make([]bool, l.Width*l.Height)
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				idx := y*l.Width + x
				if processed[idx] {
					continue
				}
				tileVal := layer[idx]
				if tileVal == TileEmpty {
					processed[idx] = true
					continue
				}

				x0 := float64(x * common.TileSize)
				y0 := float64(y * common.TileSize)

				if tileVal == TileRampLeft || tileVal == TileRampRight {
					size := float64(common.TileSize)
					ramps = append(ramps, physics.NewRamp(x0, y0, size, size, tileVal == TileRampLeft))
					processed[idx] = true
					continue
				}

				// For solid tiles, greedily expand a rectangle to cover
				// as many contiguous solid tiles as possible (width
				// then height).
				w := 1
				for x+w < l.Width {
					idx2 := y*l.Width + (x + w)
					if processed[idx2] || !isSolid(layer[idx2]) {
						break
					}
					w++
				}

				h := 1
			heightLoop:
				for y+h < l.Height {
					for xi := x; xi < x+w; xi++ {
						idx2 := (y+h)*l.Width + xi
						if processed[idx2] || !isSolid(layer[idx2]) {
							break heightLoop
						}
					}
					h++
				}

				widthF := float64(w * common.TileSize)
				heightF := float64(h * common.TileSize)
				blocks = append(blocks, physics.NewBlock(x0, y0, widthF, heightF, passable))

				for yy := y; yy < y+h; yy++ {
					for xx := x; xx < x+w; xx++ {
						processed[yy*l.Width+xx] = true
					}
				}
			}
		}
	}

	return blocks, ramps
}

func isSolid(v int) bool {
	return v != TileEmpty && v != TileRampLeft && v != TileRampRight
}

// BoundsBlocks returns four thin blocks fencing the level so nothing
// escapes the map.
func (l *Level) BoundsBlocks() []*physics.Block {
	worldW := float64(l.Width * common.TileSize)
	worldH := float64(l.Height * common.TileSize)
	thickness := 1.0
	return []*physics.Block{
		physics.NewBlock(0, -thickness, worldW, thickness, false), // top
		physics.NewBlock(0, worldH, worldW, thickness, false),     // bottom
		physics.NewBlock(-thickness, 0, thickness, worldH, false), // left
		physics.NewBlock(worldW, 0, thickness, worldH, false),     // right
	}
}

// PhysicsTileAt reports whether the tile at tile coordinates (tx, ty)
// belongs to any physics layer.
func (l *Level) PhysicsTileAt(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= l.Width || ty >= l.Height {
		return false
	}
	for layerIdx, layer := range l.Layers {
		if l.LayerMeta == nil || layerIdx >= len(l.LayerMeta) || !l.LayerMeta[layerIdx].HasPhysics {
			continue
		}
		if layer[ty*l.Width+tx] != TileEmpty {
			return true
		}
	}
	return false
}
