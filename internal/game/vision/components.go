package vision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// staleAfter is the staleness window after which a cached result must be
// recomputed.
const staleAfter = 0.1 // seconds

// DefaultPrecision is the default number of sample rays on the vision
// boundary polygon.
const DefaultPrecision = 360

// CircularVision is the per-observer vision configuration.
type CircularVision struct {
	Range     float32
	Height    float32
	Precision int
	TrueSight bool
	Last      *Result
}

// NewCircularVision creates a vision config with the default precision.
func NewCircularVision(rng, height float32) *CircularVision {
	return &CircularVision{
		Range:     rng,
		Height:    height,
		Precision: DefaultPrecision,
	}
}

// WithPrecision overrides the sample ray count.
func (v *CircularVision) WithPrecision(precision int) *CircularVision {
	v.Precision = precision
	return v
}

// WithTrueSight marks the observer as seeing through concealment.
func (v *CircularVision) WithTrueSight(trueSight bool) *CircularVision {
	v.TrueSight = trueSight
	return v
}

// NeedsRecalculation reports whether the cached result is missing or older
// than the staleness window.
func (v *CircularVision) NeedsRecalculation(now float64) bool {
	if v.Last == nil {
		return true
	}
	return now-v.Last.Timestamp > staleAfter
}

// Result is one computed visibility snapshot for an observer.
type Result struct {
	ObserverPos mgl32.Vec2
	Range       float32
	VisibleArea []mgl32.Vec2
	Shadows     []ShadowArea
	Timestamp   float64
}

// IsPointVisible reports whether a world point is inside the vision disc
// and outside every shadow.
func (r *Result) IsPointVisible(p mgl32.Vec2) bool {
	if p.Sub(r.ObserverPos).Len() > r.Range {
		return false
	}
	for i := range r.Shadows {
		if r.Shadows[i].Contains(p) {
			return false
		}
	}
	return true
}

// VisibleAreaSize returns the shoelace area of the visibility polygon.
func (r *Result) VisibleAreaSize() float32 {
	n := len(r.VisibleArea)
	if n < 3 {
		return 0
	}

	var area float32
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += r.VisibleArea[i].X() * r.VisibleArea[j].Y()
		area -= r.VisibleArea[j].X() * r.VisibleArea[i].Y()
	}
	return float32(math.Abs(float64(area))) / 2
}

// Age returns how old the result is at a given time.
func (r *Result) Age(now float64) float64 {
	return now - r.Timestamp
}
