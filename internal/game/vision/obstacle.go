package vision

import "github.com/go-gl/mathgl/mgl32"

// Shape is an obstacle footprint.
type Shape interface {
	// bound returns a radius that encloses the footprint, used by the
	// broad phase.
	bound() float32
}

// Circle is a round blocker.
type Circle struct {
	Radius float32
}

// Rect is an oriented rectangular blocker (buildings, walls).
type Rect struct {
	Width    float32
	Height   float32
	Rotation float32
}

// Terrain is an elevation bump; it occludes only observers below it.
type Terrain struct {
	Elevation float32
}

func (c Circle) bound() float32 { return c.Radius }

func (r Rect) bound() float32 {
	return float32Sqrt(r.Width*r.Width+r.Height*r.Height) * 0.5
}

func (Terrain) bound() float32 { return 0 }

// Properties controls how an obstacle occludes.
type Properties struct {
	BlocksCompletely bool
	Opacity          float32 // 0..1
	ShadowMultiplier float32
}

// Obstacle is one vision blocker in the world.
type Obstacle struct {
	ID         string
	Position   mgl32.Vec2
	Shape      Shape
	Height     float32
	Properties Properties
}
