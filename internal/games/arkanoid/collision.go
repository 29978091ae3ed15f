package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// IsIntersecting reports whether the bounding boxes of a and b overlap.
func IsIntersecting(a, b core.Shape) bool {
	return core.Intersects(a, b)
}

// SolvePaddleBall bounces the ball upward and away from the paddle's center.
// The ball is not pushed out of the paddle, so a lasting overlap fires again
// on the next frame. Returns whether a collision happened.
func SolvePaddleBall(p *Paddle, b *Ball) bool {
	if !IsIntersecting(p, b) {
		return false
	}

	v := b.settings.BallVelocity
	b.Velocity.Y = -v
	if b.X < p.X {
		b.Velocity.X = -v
	} else {
		b.Velocity.X = v
	}
	return true
}

// SolveBrickBall takes one hit off the brick and reflects the ball along the
// axis with the shallower penetration. Returns whether a collision happened.
func SolveBrickBall(br *Brick, b *Ball) bool {
	if !IsIntersecting(br, b) {
		return false
	}

	br.RequiredHits--
	if br.RequiredHits <= 0 {
		br.Destroy()
	}

	overlapLeft := b.Right() - br.Left()
	overlapRight := br.Right() - b.Left()
	overlapTop := b.Bottom() - br.Top()
	overlapBottom := br.Bottom() - b.Top()

	fromLeft := math.Abs(overlapLeft) < math.Abs(overlapRight)
	fromTop := math.Abs(overlapTop) < math.Abs(overlapBottom)

	minOverlapX := overlapRight
	if fromLeft {
		minOverlapX = overlapLeft
	}
	minOverlapY := overlapBottom
	if fromTop {
		minOverlapY = overlapTop
	}

	v := b.settings.BallVelocity
	if math.Abs(minOverlapX) < math.Abs(minOverlapY) {
		if fromLeft {
			b.Velocity.X = -v
		} else {
			b.Velocity.X = v
		}
	} else {
		if fromTop {
			b.Velocity.Y = -v
		} else {
			b.Velocity.Y = v
		}
	}
	return true
}
