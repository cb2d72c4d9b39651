package vision

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// parallelThreshold is the observer count above which Refresh fans out to
// a worker pool. Below it, sequential recomputation is cheaper than the
// goroutine overhead.
const parallelThreshold = 1000

// PositionFunc resolves an observer's current position. Returning false
// skips the observer this pass.
type PositionFunc func(model.EntityID) (mgl32.Vec2, bool)

// ObstacleFunc returns the obstacle set to cast shadows from. Called once
// per Refresh pass.
type ObstacleFunc func() []Obstacle

// Refresher recomputes stale visibility snapshots for registered observers
// and publishes them to a shared cache.
type Refresher struct {
	mu        sync.RWMutex
	observers map[model.EntityID]*CircularVision

	calc       *Calculator
	cache      *ResultCache
	positionOf PositionFunc
	obstacles  ObstacleFunc

	interval   time.Duration
	maxAge     float64
	numWorkers int
}

// NewRefresher creates a refresher. interval is how often Run recomputes;
// maxAge (seconds) is the cleanup threshold for stale cache entries.
func NewRefresher(cache *ResultCache, positionOf PositionFunc, obstacles ObstacleFunc, interval time.Duration, maxAge float64) *Refresher {
	return &Refresher{
		observers:  make(map[model.EntityID]*CircularVision),
		calc:       NewCalculator(),
		cache:      cache,
		positionOf: positionOf,
		obstacles:  obstacles,
		interval:   interval,
		maxAge:     maxAge,
		numWorkers: runtime.NumCPU(),
	}
}

// Register adds an observer for periodic recomputation.
func (rf *Refresher) Register(observer model.EntityID, vis *CircularVision) {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	rf.observers[observer] = vis
	slog.Debug("observer registered for vision updates", "observer", observer, "total", len(rf.observers))
}

// Unregister removes an observer and drops its cached snapshot.
func (rf *Refresher) Unregister(observer model.EntityID) {
	rf.mu.Lock()
	delete(rf.observers, observer)
	remaining := len(rf.observers)
	rf.mu.Unlock()

	rf.cache.Remove(observer)
	slog.Debug("observer unregistered from vision updates", "observer", observer, "remaining", remaining)
}

// Count returns the number of registered observers.
func (rf *Refresher) Count() int {
	rf.mu.RLock()
	defer rf.mu.RUnlock()
	return len(rf.observers)
}

// SetNumWorkers bounds the worker pool used for large observer counts.
func (rf *Refresher) SetNumWorkers(n int) {
	if n < 1 {
		n = 1
	}
	rf.numWorkers = n
}

// Run recomputes snapshots on a ticker until ctx is cancelled.
func (rf *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(rf.interval)
	defer ticker.Stop()

	slog.Info("vision refresher started", "interval", rf.interval, "maxAge", rf.maxAge)

	for {
		select {
		case <-ctx.Done():
			slog.Info("vision refresher stopping")
			return ctx.Err()
		case t := <-ticker.C:
			now := float64(t.UnixNano()) / float64(time.Second)
			rf.Refresh(now)
			rf.cache.CleanupExpired(now, rf.maxAge)
		}
	}
}

type refreshTask struct {
	observer model.EntityID
	vis      *CircularVision
}

// Refresh recomputes every stale snapshot once and publishes the batch.
// Returns how many snapshots were recomputed.
func (rf *Refresher) Refresh(now float64) int {
	rf.mu.RLock()
	tasks := make([]refreshTask, 0, len(rf.observers))
	for observer, vis := range rf.observers {
		tasks = append(tasks, refreshTask{observer: observer, vis: vis})
	}
	rf.mu.RUnlock()

	if len(tasks) == 0 {
		return 0
	}

	obstacles := rf.obstacles()

	var results map[model.EntityID]Result
	if len(tasks) < parallelThreshold {
		results = rf.refreshSequential(tasks, obstacles, now)
	} else {
		results = rf.refreshParallel(tasks, obstacles, now)
	}

	if len(results) > 0 {
		rf.cache.BatchUpdate(results)
	}

	slog.Debug("vision batch update completed",
		"observers", len(tasks),
		"updated", len(results),
		"skipped", len(tasks)-len(results))
	return len(results)
}

func (rf *Refresher) refreshSequential(tasks []refreshTask, obstacles []Obstacle, now float64) map[model.EntityID]Result {
	results := make(map[model.EntityID]Result, len(tasks))
	for _, t := range tasks {
		if r, ok := rf.refreshOne(t, obstacles, now); ok {
			results[t.observer] = r
		}
	}
	return results
}

func (rf *Refresher) refreshParallel(tasks []refreshTask, obstacles []Obstacle, now float64) map[model.EntityID]Result {
	numWorkers := rf.numWorkers
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}
	chunkSize := (len(tasks) + numWorkers - 1) / numWorkers

	var mu sync.Mutex
	results := make(map[model.EntityID]Result, len(tasks))

	var g errgroup.Group
	for start := 0; start < len(tasks); start += chunkSize {
		end := start + chunkSize
		if end > len(tasks) {
			end = len(tasks)
		}
		chunk := tasks[start:end]
		g.Go(func() error {
			local := make(map[model.EntityID]Result, len(chunk))
			for _, t := range chunk {
				if r, ok := rf.refreshOne(t, obstacles, now); ok {
					local[t.observer] = r
				}
			}
			mu.Lock()
			for observer, r := range local {
				results[observer] = r
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// refreshOne recomputes a single observer's snapshot if it has gone stale.
func (rf *Refresher) refreshOne(t refreshTask, obstacles []Obstacle, now float64) (Result, bool) {
	if !t.vis.NeedsRecalculation(now) {
		return Result{}, false
	}
	pos, ok := rf.positionOf(t.observer)
	if !ok {
		return Result{}, false
	}

	var r Result
	if t.vis.TrueSight || len(obstacles) == 0 {
		r = BasicCircularVision(pos, t.vis.Range, t.vis.Precision, now)
	} else {
		r = rf.calc.Calculate(pos, t.vis, obstacles, now)
	}
	t.vis.Last = &r
	return r, true
}
