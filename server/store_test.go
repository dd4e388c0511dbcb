package server

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/garden/garden"
	"github.com/plus3/garden/scoreboard"
)

type countingScores struct {
	mu      sync.Mutex
	results []scoreboard.Result
}

func (c *countingScores) Record(_ context.Context, r scoreboard.Result) (scoreboard.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, r)
	return r, nil
}

func (c *countingScores) Top(context.Context, int) ([]scoreboard.Result, error) {
	return nil, nil
}

func (c *countingScores) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func TestRestartBeforeRecordKeepsResult(t *testing.T) {
	scores := &countingScores{}
	store := NewStore(zerolog.Nop(), garden.WithSeed(5), garden.WithQueueSize(1))
	srv := New(store, scores, zerolog.Nop())
	sess := store.Create("cy")

	m := sess.Place(garden.Origin)
	require.True(t, m.Accepted)
	require.NotNil(t, m.Finished)

	// another request restarts the session before this one records
	sess.Restart()
	srv.placed(context.Background(), sess, m)

	require.Equal(t, 1, scores.len())
	got := scores.results[0]
	assert.Equal(t, "cy", got.Player)
	assert.Equal(t, garden.BasePoints, got.Score)
	assert.Equal(t, 1, got.Tiles)
	assert.Equal(t, uint64(5), got.Seed)
}

func TestMoveCarriesResultOnlyWhenRoundEnds(t *testing.T) {
	store := NewStore(zerolog.Nop(), garden.WithSeed(5), garden.WithQueueSize(2))
	sess := store.Create("di")

	m := sess.Place(garden.Origin)
	require.True(t, m.Accepted)
	assert.Nil(t, m.Finished)

	m = sess.Place(garden.Coord{X: 9, Y: 9})
	assert.False(t, m.Accepted)
	assert.Nil(t, m.Finished)

	m = sess.Place(garden.Coord{X: 1, Y: 0})
	require.True(t, m.Accepted)
	require.True(t, m.Placement.GameOver)
	require.NotNil(t, m.Finished)
	assert.Equal(t, m.State.Score, m.Finished.Score)

	m = sess.Place(garden.Coord{X: -1, Y: 0})
	assert.False(t, m.Accepted)
	assert.Nil(t, m.Finished)
}

func TestConcurrentRestartsRecordEveryRound(t *testing.T) {
	scores := &countingScores{}
	store := NewStore(zerolog.Nop(), garden.WithQueueSize(1))
	srv := New(store, scores, zerolog.Nop())
	sess := store.Create("ed")

	var finished atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				m := sess.Place(garden.Origin)
				if m.Accepted {
					finished.Add(1)
					srv.placed(context.Background(), sess, m)
				}
				sess.Restart()
			}
		}()
	}
	wg.Wait()

	assert.Positive(t, finished.Load())
	assert.Equal(t, int(finished.Load()), scores.len())
}
