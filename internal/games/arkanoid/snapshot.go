package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/entity"
)

// Snapshot contains the observable game state, for determinism checks and
// for recording finished runs. Entities are listed in manager order.
type Snapshot struct {
	Tick  uint64
	Phase string
	Score int
	Lives int

	// Each ball is 4 floats: X, Y, VX, VY
	BallCount int
	BallData  []float64

	// Each paddle is 2 floats: X, Y
	PaddleCount int
	PaddleData  []float64

	// Each brick is 3 ints: column-major grid X, Y (world units) and RequiredHits
	BrickCount int
	BrickData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is never negative
		Phase: g.phase.String(),
		Score: g.score,
		Lives: g.lives,
	}
	if g.manager == nil {
		return snap
	}

	entity.ForEach(g.manager, func(b *Ball) {
		snap.BallData = append(snap.BallData, b.X, b.Y, b.Velocity.X, b.Velocity.Y)
	})
	entity.ForEach(g.manager, func(p *Paddle) {
		snap.PaddleData = append(snap.PaddleData, p.X, p.Y)
	})
	entity.ForEach(g.manager, func(br *Brick) {
		snap.BrickData = append(snap.BrickData, int(br.X), int(br.Y), br.RequiredHits)
	})

	snap.BallCount = len(snap.BallData) / 4
	snap.PaddleCount = len(snap.PaddleData) / 2
	snap.BrickCount = len(snap.BrickData) / 3
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	for _, r := range snap.Phase {
		h = h*31 + uint64(r)
	}

	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.PaddleCount) //#nosec G115 -- hash computation
	for _, v := range snap.PaddleData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.BrickCount) //#nosec G115 -- hash computation
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
