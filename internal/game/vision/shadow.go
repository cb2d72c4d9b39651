package vision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadowType classifies what cast a shadow.
type ShadowType int8

const (
	ShadowObject ShadowType = iota
	ShadowBuilding
	ShadowTerrain
	ShadowSector
	ShadowTemporary
)

// Geometry is the occluded region of one shadow.
type Geometry interface {
	// Contains reports whether a world point lies inside the region.
	Contains(p mgl32.Vec2) bool
}

// Sector is an angular wedge from a center out to a radius. Angles are
// radians; a start greater than end means the wedge wraps through 0.
type Sector struct {
	Center     mgl32.Vec2
	StartAngle float32
	EndAngle   float32
	Radius     float32
}

// Contains tests distance first, then angular inclusion with wrap-around.
func (s Sector) Contains(p mgl32.Vec2) bool {
	d := p.Sub(s.Center)
	if d.Len() > s.Radius {
		return false
	}
	angle := float32(math.Atan2(float64(d.Y()), float64(d.X())))
	return angleInRange(angle, s.StartAngle, s.EndAngle)
}

// Polygon is an arbitrary closed region.
type Polygon struct {
	Vertices []mgl32.Vec2
}

// Contains uses the even-odd ray cast along +X. Boundary behavior is
// half-open; callers should test strict-interior points.
func (pg Polygon) Contains(p mgl32.Vec2) bool {
	return pointInPolygon(p, pg.Vertices)
}

// Trapezoid is the four-cornered shadow of a rectangular blocker: near edge
// on the silhouette, far edge projected onto the vision circle.
type Trapezoid struct {
	Vertices [4]mgl32.Vec2
}

// Contains treats the trapezoid as a quad polygon.
func (tz Trapezoid) Contains(p mgl32.Vec2) bool {
	return pointInPolygon(p, tz.Vertices[:])
}

// ShadowArea is one occluded sub-region of an observer's vision disc.
// Depth is the distance from the blocker silhouette to the vision edge.
type ShadowArea struct {
	Type      ShadowType
	BlockerID string
	Geometry  Geometry
	Depth     float32
}

// Contains reports whether a point is inside this shadow.
func (s *ShadowArea) Contains(p mgl32.Vec2) bool {
	if s.Geometry == nil {
		return false
	}
	return s.Geometry.Contains(p)
}

// angleInRange normalizes to [0, 2π) and handles wrap-around ranges.
func angleInRange(angle, start, end float32) bool {
	a := normalizeAngle(angle)
	s := normalizeAngle(start)
	e := normalizeAngle(end)

	if s <= e {
		return a >= s && a <= e
	}
	return a >= s || a <= e
}

func normalizeAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}

// pointInPolygon is the standard even-odd crossing test.
func pointInPolygon(p mgl32.Vec2, vertices []mgl32.Vec2) bool {
	if len(vertices) < 3 {
		return false
	}

	inside := false
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := vertices[i], vertices[j]

		if (vi.Y() > p.Y()) != (vj.Y() > p.Y()) &&
			p.X() < (vj.X()-vi.X())*(p.Y()-vi.Y())/(vj.Y()-vi.Y())+vi.X() {
			inside = !inside
		}
	}
	return inside
}

// MergeAdjacentShadows coalesces sector shadows that share a center and
// touch end-to-start. Non-sector shadows pass through untouched.
func MergeAdjacentShadows(shadows []ShadowArea) []ShadowArea {
	if len(shadows) <= 1 {
		return shadows
	}

	var sectors []ShadowArea
	var others []ShadowArea
	for _, s := range shadows {
		if _, ok := s.Geometry.(Sector); ok {
			sectors = append(sectors, s)
		} else {
			others = append(others, s)
		}
	}
	if len(sectors) == 0 {
		return others
	}

	sortSectorsByStart(sectors)

	merged := make([]ShadowArea, 0, len(sectors))
	current := sectors[0]
	for _, next := range sectors[1:] {
		if canMergeSectors(current, next) {
			current = mergeSectors(current, next)
		} else {
			merged = append(merged, current)
			current = next
		}
	}
	merged = append(merged, current)

	return append(merged, others...)
}

func sortSectorsByStart(sectors []ShadowArea) {
	for i := 1; i < len(sectors); i++ {
		for j := i; j > 0; j-- {
			a := sectors[j-1].Geometry.(Sector)
			b := sectors[j].Geometry.(Sector)
			if b.StartAngle < a.StartAngle {
				sectors[j-1], sectors[j] = sectors[j], sectors[j-1]
			}
		}
	}
}

func canMergeSectors(a, b ShadowArea) bool {
	sa := a.Geometry.(Sector)
	sb := b.Geometry.(Sector)
	gap := sb.StartAngle - sa.EndAngle
	if gap < 0 {
		gap = -gap
	}
	return sa.Center.Sub(sb.Center).Len() < 1 && gap < 0.1
}

func mergeSectors(a, b ShadowArea) ShadowArea {
	sa := a.Geometry.(Sector)
	sb := b.Geometry.(Sector)

	radius := sa.Radius
	if sb.Radius > radius {
		radius = sb.Radius
	}
	depth := a.Depth
	if b.Depth > depth {
		depth = b.Depth
	}

	return ShadowArea{
		Type:      a.Type,
		BlockerID: a.BlockerID,
		Geometry: Sector{
			Center:     sa.Center,
			StartAngle: sa.StartAngle,
			EndAngle:   sb.EndAngle,
			Radius:     radius,
		},
		Depth: depth,
	}
}

// OptimizeShadows drops degenerate shadows and sector shadows fully
// contained in an earlier one.
func OptimizeShadows(shadows []ShadowArea) []ShadowArea {
	optimized := make([]ShadowArea, 0, len(shadows))
	for _, s := range shadows {
		if !validShadow(&s) {
			continue
		}
		if shadowRedundant(&s, optimized) {
			continue
		}
		optimized = append(optimized, s)
	}
	return optimized
}

func validShadow(s *ShadowArea) bool {
	switch g := s.Geometry.(type) {
	case Sector:
		span := g.EndAngle - g.StartAngle
		if span < 0 {
			span = -span
		}
		return g.Radius > 0 && span > 0.01
	case Polygon:
		return len(g.Vertices) >= 3
	case Trapezoid:
		return true
	default:
		return false
	}
}

func shadowRedundant(s *ShadowArea, existing []ShadowArea) bool {
	for i := range existing {
		if sectorContainsSector(&existing[i], s) {
			return true
		}
	}
	return false
}

func sectorContainsSector(container, contained *ShadowArea) bool {
	a, ok := container.Geometry.(Sector)
	if !ok {
		return false
	}
	b, ok := contained.Geometry.(Sector)
	if !ok {
		return false
	}
	return a.Center.Sub(b.Center).Len() < 1 &&
		a.StartAngle <= b.StartAngle &&
		a.EndAngle >= b.EndAngle &&
		a.Radius >= b.Radius
}
