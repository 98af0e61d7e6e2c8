package physics

import "fmt"

// Obstacle is anything a moving entity can collide with: static blocks,
// ramps, and other moving entities.
type Obstacle interface {
	Bounds() Rect
	// Passable obstacles block only when approached from above
	// (one-way platforms); they never block sideways or upward motion.
	Passable() bool
}

// Passenger is anything a carrier can transport on its top face.
// *Movement implements it with full re-simulation; plain props are
// translated verbatim.
type Passenger interface {
	Bounds() Rect
	Translate(delta Vector)
}

// Block is an immutable static AABB obstacle. Blocks are level geometry:
// created once per level and never mutated.
type Block struct {
	bounds   Rect
	passable bool
}

// NewBlock builds a block at (x, y) with the given size. Non-positive
// sizes are a contract violation.
func NewBlock(x, y, w, h float64, passable bool) *Block {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("physics: block size must be positive, got %gx%g", w, h))
	}
	return &Block{
		bounds:   Rect{X: x, Y: y, Width: w, Height: h},
		passable: passable,
	}
}

func (b *Block) Bounds() Rect   { return b.bounds }
func (b *Block) Passable() bool { return b.passable }

// Prop is a movable decoration with no physics of its own. Carriers
// translate props directly with no collision check.
type Prop struct {
	Pos  Vector
	Size Vector
}

func NewProp(pos, size Vector) *Prop {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("physics: prop size must be positive, got %gx%g", size.X, size.Y))
	}
	return &Prop{Pos: pos, Size: size}
}

func (p *Prop) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Size.X, Height: p.Size.Y}
}

func (p *Prop) Translate(delta Vector) {
	p.Pos = p.Pos.Add(delta)
}
