package vision

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// Stats counts cache mutations since construction.
type Stats struct {
	TotalUpdates    uint64
	BatchUpdates    uint64
	ManualRemovals  uint64
	ExpiredCleanups uint64
}

// ResultCache holds the latest visibility snapshot per observer. All
// methods are safe for concurrent use.
type ResultCache struct {
	mu      sync.RWMutex
	results map[model.EntityID]Result
	stats   Stats
}

func NewResultCache() *ResultCache {
	return &ResultCache{
		results: make(map[model.EntityID]Result),
	}
}

// Update stores or replaces the snapshot for observer.
func (c *ResultCache) Update(observer model.EntityID, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[observer] = r
	c.stats.TotalUpdates++
}

// BatchUpdate stores a set of snapshots under a single lock acquisition.
func (c *ResultCache) BatchUpdate(results map[model.EntityID]Result) {
	if len(results) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for observer, r := range results {
		c.results[observer] = r
		c.stats.TotalUpdates++
	}
	c.stats.BatchUpdates++
}

// Get returns the cached snapshot for observer, if any.
func (c *ResultCache) Get(observer model.EntityID) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[observer]
	return r, ok
}

// Remove drops the snapshot for observer.
func (c *ResultCache) Remove(observer model.EntityID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.results[observer]; ok {
		delete(c.results, observer)
		c.stats.ManualRemovals++
	}
}

// CleanupExpired removes every snapshot whose age reached maxAge and
// returns how many were dropped.
func (c *ResultCache) CleanupExpired(now, maxAge float64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for observer, r := range c.results {
		if r.Age(now) >= maxAge {
			delete(c.results, observer)
			removed++
		}
	}
	c.stats.ExpiredCleanups += uint64(removed)
	return removed
}

// LineOfSight reports whether observer's cached snapshot sees target's
// cached position. Missing snapshots count as no sight.
func (c *ResultCache) LineOfSight(observer, target model.EntityID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	or, ok := c.results[observer]
	if !ok {
		return false
	}
	tr, ok := c.results[target]
	if !ok {
		return false
	}
	return or.IsPointVisible(tr.ObserverPos)
}

// EntityPosition pairs an entity with its current world position for
// visibility queries.
type EntityPosition struct {
	ID  model.EntityID
	Pos mgl32.Vec2
}

// EntitiesInVision filters candidates down to those whose position is
// visible to observer. The observer itself is excluded.
func (c *ResultCache) EntitiesInVision(observer model.EntityID, candidates []EntityPosition) []model.EntityID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	or, ok := c.results[observer]
	if !ok {
		return nil
	}
	var visible []model.EntityID
	for _, cand := range candidates {
		if cand.ID == observer {
			continue
		}
		if or.IsPointVisible(cand.Pos) {
			visible = append(visible, cand.ID)
		}
	}
	return visible
}

// VisionOverlap estimates how much two observers' vision discs overlap, in
// [0, 1]. Disjoint discs score 0; a disc fully inside the other scores the
// ratio of their areas.
func (c *ResultCache) VisionOverlap(a, b model.EntityID) float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ra, ok := c.results[a]
	if !ok {
		return 0
	}
	rb, ok := c.results[b]
	if !ok {
		return 0
	}
	return discOverlap(ra.ObserverPos, ra.Range, rb.ObserverPos, rb.Range)
}

func discOverlap(posA mgl32.Vec2, rngA float32, posB mgl32.Vec2, rngB float32) float32 {
	dist := posA.Sub(posB).Len()
	if dist >= rngA+rngB {
		return 0
	}
	smaller, larger := rngA, rngB
	if smaller > larger {
		smaller, larger = larger, smaller
	}
	if dist+smaller <= larger {
		if larger == 0 {
			return 0
		}
		return (smaller * smaller) / (larger * larger)
	}
	return (rngA + rngB - dist) / (rngA + rngB) * 0.5
}

// QualityScore rates a snapshot by how much of the full disc stays
// visible, penalized slightly per shadow. Missing snapshots score 0.
func (c *ResultCache) QualityScore(observer model.EntityID) float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[observer]
	if !ok || r.Range <= 0 {
		return 0
	}
	full := float32(math.Pi) * r.Range * r.Range
	score := r.VisibleAreaSize() / full

	penalty := float32(len(r.Shadows)) * 0.01
	if penalty > 0.2 {
		penalty = 0.2
	}
	score -= penalty
	if score < 0 {
		score = 0
	}
	return score
}

// Stats returns a copy of the mutation counters.
func (c *ResultCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Clear drops every snapshot without touching counters.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.results)
}
