package vision

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

type refresherFixture struct {
	cache     *ResultCache
	refresher *Refresher
	positions map[model.EntityID]mgl32.Vec2
	obstacles []Obstacle
}

func newRefresherFixture() *refresherFixture {
	f := &refresherFixture{
		cache:     NewResultCache(),
		positions: make(map[model.EntityID]mgl32.Vec2),
	}
	f.refresher = NewRefresher(
		f.cache,
		func(id model.EntityID) (mgl32.Vec2, bool) {
			pos, ok := f.positions[id]
			return pos, ok
		},
		func() []Obstacle { return f.obstacles },
		100*time.Millisecond,
		0.2,
	)
	return f
}

func TestRefresherComputesRegisteredObservers(t *testing.T) {
	f := newRefresherFixture()
	f.positions[1] = mgl32.Vec2{0, 0}
	f.positions[2] = mgl32.Vec2{20, 0}
	f.refresher.Register(1, NewCircularVision(10, 0))
	f.refresher.Register(2, NewCircularVision(10, 0))

	updated := f.refresher.Refresh(1.0)

	assert.Equal(t, 2, updated)
	assert.Equal(t, 2, f.refresher.Count())

	r, ok := f.cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1.0, r.Timestamp)
	assert.NotEmpty(t, r.VisibleArea)
}

func TestRefresherSkipsFreshSnapshots(t *testing.T) {
	f := newRefresherFixture()
	f.positions[1] = mgl32.Vec2{0, 0}
	f.refresher.Register(1, NewCircularVision(10, 0))

	assert.Equal(t, 1, f.refresher.Refresh(1.0))
	// Within the staleness window: nothing to do.
	assert.Equal(t, 0, f.refresher.Refresh(1.05))
	// Past the window: recomputed.
	assert.Equal(t, 1, f.refresher.Refresh(1.2))
}

func TestRefresherSkipsObserversWithoutPosition(t *testing.T) {
	f := newRefresherFixture()
	f.refresher.Register(1, NewCircularVision(10, 0))

	assert.Equal(t, 0, f.refresher.Refresh(1.0))
	_, ok := f.cache.Get(1)
	assert.False(t, ok)
}

func TestRefresherCastsShadows(t *testing.T) {
	f := newRefresherFixture()
	f.positions[1] = mgl32.Vec2{0, 0}
	f.obstacles = []Obstacle{blockingCircle("rock", mgl32.Vec2{3, 0}, 1)}
	f.refresher.Register(1, NewCircularVision(10, 0))

	f.refresher.Refresh(1.0)

	r, ok := f.cache.Get(1)
	require.True(t, ok)
	require.Len(t, r.Shadows, 1)
	assert.False(t, r.IsPointVisible(mgl32.Vec2{5, 0}))
}

func TestRefresherTrueSightIgnoresObstacles(t *testing.T) {
	f := newRefresherFixture()
	f.positions[1] = mgl32.Vec2{0, 0}
	f.obstacles = []Obstacle{blockingCircle("rock", mgl32.Vec2{3, 0}, 1)}
	f.refresher.Register(1, NewCircularVision(10, 0).WithTrueSight(true))

	f.refresher.Refresh(1.0)

	r, ok := f.cache.Get(1)
	require.True(t, ok)
	assert.Empty(t, r.Shadows)
	assert.True(t, r.IsPointVisible(mgl32.Vec2{5, 0}))
}

func TestRefresherUnregisterDropsSnapshot(t *testing.T) {
	f := newRefresherFixture()
	f.positions[1] = mgl32.Vec2{0, 0}
	f.refresher.Register(1, NewCircularVision(10, 0))
	f.refresher.Refresh(1.0)

	f.refresher.Unregister(1)

	assert.Equal(t, 0, f.refresher.Count())
	_, ok := f.cache.Get(1)
	assert.False(t, ok)
}
