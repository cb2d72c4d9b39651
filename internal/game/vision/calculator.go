package vision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minShadowSpan discards shadows narrower than half a degree.
const minShadowSpan = 0.5 * math.Pi / 180

// Calculator computes visibility polygons and shadow sets for observers.
// It is stateless and safe to share across goroutines.
type Calculator struct{}

// NewCalculator creates a calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate produces the visibility snapshot for an observer at pos.
// Degenerate inputs (no obstacles, zero-size blockers) yield an empty
// shadow list and a fully visible disc.
func (c *Calculator) Calculate(pos mgl32.Vec2, vis *CircularVision, obstacles []Obstacle, now float64) Result {
	shadows := c.buildShadows(pos, vis.Height, vis.Range, obstacles)
	shadows = MergeAdjacentShadows(shadows)
	shadows = OptimizeShadows(shadows)

	precision := vis.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	return Result{
		ObserverPos: pos,
		Range:       vis.Range,
		VisibleArea: c.samplePolygon(pos, vis.Range, precision, shadows),
		Shadows:     shadows,
		Timestamp:   now,
	}
}

// BasicCircularVision returns a fully visible disc with no shadows.
func BasicCircularVision(pos mgl32.Vec2, rng float32, precision int, now float64) Result {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	area := make([]mgl32.Vec2, 0, precision)
	step := 2 * math.Pi / float64(precision)
	for i := 0; i < precision; i++ {
		angle := float64(i) * step
		area = append(area, pos.Add(mgl32.Vec2{
			rng * float32(math.Cos(angle)),
			rng * float32(math.Sin(angle)),
		}))
	}
	return Result{
		ObserverPos: pos,
		Range:       rng,
		VisibleArea: area,
		Timestamp:   now,
	}
}

// buildShadows runs the broad phase and casts one shadow per blocking
// obstacle.
func (c *Calculator) buildShadows(pos mgl32.Vec2, height, rng float32, obstacles []Obstacle) []ShadowArea {
	var shadows []ShadowArea
	for i := range obstacles {
		o := &obstacles[i]
		if !o.Properties.BlocksCompletely {
			continue
		}
		dist := o.Position.Sub(pos).Len()
		if dist > rng+o.Shape.bound() {
			continue
		}
		if s, ok := c.shadowFor(pos, height, rng, o, dist); ok {
			shadows = append(shadows, s)
		}
	}
	return shadows
}

func (c *Calculator) shadowFor(pos mgl32.Vec2, height, rng float32, o *Obstacle, dist float32) (ShadowArea, bool) {
	switch shape := o.Shape.(type) {
	case Circle:
		// A low blocker casts no shadow over the observer.
		if height > 0 && o.Height <= height*0.5 {
			return ShadowArea{}, false
		}
		return c.circularShadow(pos, rng, o, shape, dist)
	case Rect:
		if height > 0 && o.Height <= height*0.5 {
			return ShadowArea{}, false
		}
		return c.rectShadow(pos, rng, o, shape)
	case Terrain:
		return c.terrainShadow(pos, height, rng, o, shape, dist)
	default:
		return ShadowArea{}, false
	}
}

// circularShadow casts the angular wedge behind a round blocker out to the
// vision edge.
func (c *Calculator) circularShadow(pos mgl32.Vec2, rng float32, o *Obstacle, shape Circle, dist float32) (ShadowArea, bool) {
	if dist <= shape.Radius {
		// Observer inside the blocker sees past it.
		return ShadowArea{}, false
	}

	to := o.Position.Sub(pos)
	centerAngle := float32(math.Atan2(float64(to.Y()), float64(to.X())))
	offset := float32(math.Asin(float64(shape.Radius / dist)))
	if offset < minShadowSpan {
		return ShadowArea{}, false
	}

	near := dist - shape.Radius
	return ShadowArea{
		Type:      ShadowObject,
		BlockerID: o.ID,
		Geometry: Sector{
			Center:     pos,
			StartAngle: centerAngle - offset,
			EndAngle:   centerAngle + offset,
			Radius:     rng,
		},
		Depth: rng - near,
	}, true
}

// rectShadow builds a trapezoid: near edge on the silhouette corners, far
// edge projected to the range circle. Wrapping silhouettes flatten to a
// polygon instead.
func (c *Calculator) rectShadow(pos mgl32.Vec2, rng float32, o *Obstacle, shape Rect) (ShadowArea, bool) {
	corners := rectCorners(o.Position, shape)

	// Extreme corners by angle relative to the observer.
	minIdx, maxIdx := 0, 0
	angles := make([]float32, len(corners))
	for i, corner := range corners {
		d := corner.Sub(pos)
		angles[i] = float32(math.Atan2(float64(d.Y()), float64(d.X())))
		if angles[i] < angles[minIdx] {
			minIdx = i
		}
		if angles[i] > angles[maxIdx] {
			maxIdx = i
		}
	}
	if angles[maxIdx]-angles[minIdx] < minShadowSpan {
		return ShadowArea{}, false
	}

	nearLeft := corners[minIdx]
	nearRight := corners[maxIdx]
	farLeft := projectToRange(pos, nearLeft, rng)
	farRight := projectToRange(pos, nearRight, rng)

	near := nearLeft.Sub(pos).Len()
	if d := nearRight.Sub(pos).Len(); d < near {
		near = d
	}

	if angles[maxIdx]-angles[minIdx] > math.Pi {
		// Silhouette wraps past the ±π seam; a quad would self-intersect.
		return ShadowArea{
			Type:      ShadowBuilding,
			BlockerID: o.ID,
			Geometry:  Polygon{Vertices: []mgl32.Vec2{nearLeft, nearRight, farRight, farLeft}},
			Depth:     rng - near,
		}, true
	}

	return ShadowArea{
		Type:      ShadowBuilding,
		BlockerID: o.ID,
		Geometry:  Trapezoid{Vertices: [4]mgl32.Vec2{nearLeft, nearRight, farRight, farLeft}},
		Depth:     rng - near,
	}, true
}

// terrainShadow casts a narrow wedge behind an elevation bump that rises
// above the observer.
func (c *Calculator) terrainShadow(pos mgl32.Vec2, height, rng float32, o *Obstacle, shape Terrain, dist float32) (ShadowArea, bool) {
	if shape.Elevation <= height {
		return ShadowArea{}, false
	}
	if dist > rng || dist == 0 {
		return ShadowArea{}, false
	}

	to := o.Position.Sub(pos)
	centerAngle := float32(math.Atan2(float64(to.Y()), float64(to.X())))
	const angleWidth = 0.1

	return ShadowArea{
		Type:      ShadowTerrain,
		BlockerID: o.ID,
		Geometry: Sector{
			Center:     pos,
			StartAngle: centerAngle - angleWidth,
			EndAngle:   centerAngle + angleWidth,
			Radius:     rng,
		},
		Depth: rng - dist,
	}, true
}

// samplePolygon walks precision uniformly spaced rays; each ray's length is
// the range clipped to the nearest covering shadow.
func (c *Calculator) samplePolygon(pos mgl32.Vec2, rng float32, precision int, shadows []ShadowArea) []mgl32.Vec2 {
	area := make([]mgl32.Vec2, 0, precision)
	step := 2 * math.Pi / float64(precision)

	for i := 0; i < precision; i++ {
		angle := float32(float64(i) * step)
		radial := rng
		for j := range shadows {
			if !shadowCoversAngle(&shadows[j], pos, angle) {
				continue
			}
			if near := shadowNearDistance(&shadows[j], pos); near < radial {
				radial = near
			}
		}
		area = append(area, pos.Add(mgl32.Vec2{
			radial * cos32(angle),
			radial * sin32(angle),
		}))
	}
	return area
}

// LineOfSightClear reports whether the segment from start to end crosses a
// fully blocking obstacle. Rectangles are conservatively tested against
// their bounding circle.
func (c *Calculator) LineOfSightClear(start, end mgl32.Vec2, obstacles []Obstacle) bool {
	delta := end.Sub(start)
	dist := delta.Len()
	if dist == 0 {
		return true
	}
	dir := delta.Mul(1 / dist)

	for i := range obstacles {
		o := &obstacles[i]
		if !o.Properties.BlocksCompletely {
			continue
		}
		switch shape := o.Shape.(type) {
		case Circle:
			if rayHitsCircle(start, dir, dist, o.Position, shape.Radius) {
				return false
			}
		case Rect:
			if rayHitsCircle(start, dir, dist, o.Position, shape.bound()) {
				return false
			}
		case Terrain:
			// Elevation alone never blocks a ground segment.
		}
	}
	return true
}

func shadowCoversAngle(s *ShadowArea, pos mgl32.Vec2, angle float32) bool {
	switch g := s.Geometry.(type) {
	case Sector:
		return angleInRange(angle, g.StartAngle, g.EndAngle)
	case Trapezoid:
		return verticesCoverAngle(pos, g.Vertices[:2], angle)
	case Polygon:
		if len(g.Vertices) < 2 {
			return false
		}
		return verticesCoverAngle(pos, g.Vertices[:2], angle)
	default:
		return false
	}
}

// verticesCoverAngle tests whether angle falls between the silhouette
// vertices (the near edge) as seen from pos.
func verticesCoverAngle(pos mgl32.Vec2, nearEdge []mgl32.Vec2, angle float32) bool {
	d0 := nearEdge[0].Sub(pos)
	d1 := nearEdge[1].Sub(pos)
	a0 := float32(math.Atan2(float64(d0.Y()), float64(d0.X())))
	a1 := float32(math.Atan2(float64(d1.Y()), float64(d1.X())))
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	if a1-a0 > math.Pi {
		return angleInRange(angle, a1, a0)
	}
	return angleInRange(angle, a0, a1)
}

func shadowNearDistance(s *ShadowArea, pos mgl32.Vec2) float32 {
	switch g := s.Geometry.(type) {
	case Sector:
		return g.Radius - s.Depth
	case Trapezoid:
		return minVertexDistance(pos, g.Vertices[:2])
	case Polygon:
		if len(g.Vertices) < 2 {
			return 0
		}
		return minVertexDistance(pos, g.Vertices[:2])
	default:
		return 0
	}
}

func minVertexDistance(pos mgl32.Vec2, vertices []mgl32.Vec2) float32 {
	minDist := float32(math.MaxFloat32)
	for _, v := range vertices {
		if d := v.Sub(pos).Len(); d < minDist {
			minDist = d
		}
	}
	return minDist
}

func rectCorners(center mgl32.Vec2, shape Rect) [4]mgl32.Vec2 {
	hw := shape.Width / 2
	hh := shape.Height / 2
	cosR := cos32(shape.Rotation)
	sinR := sin32(shape.Rotation)

	local := [4]mgl32.Vec2{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}
	var out [4]mgl32.Vec2
	for i, l := range local {
		out[i] = center.Add(mgl32.Vec2{
			l.X()*cosR - l.Y()*sinR,
			l.X()*sinR + l.Y()*cosR,
		})
	}
	return out
}

func projectToRange(pos, through mgl32.Vec2, rng float32) mgl32.Vec2 {
	d := through.Sub(pos)
	l := d.Len()
	if l == 0 {
		return pos
	}
	return pos.Add(d.Mul(rng / l))
}

func rayHitsCircle(start, dir mgl32.Vec2, maxDist float32, center mgl32.Vec2, radius float32) bool {
	toCenter := center.Sub(start)
	proj := toCenter.Dot(dir)
	if proj < 0 || proj > maxDist {
		return false
	}
	closest := start.Add(dir.Mul(proj))
	return center.Sub(closest).Len() <= radius
}

func float32Sqrt(v float32) float32 { return float32(math.Sqrt(float64(v))) }

func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }

func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }
