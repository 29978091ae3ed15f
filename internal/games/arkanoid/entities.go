package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/entity"
)

// Entity kinds managed by the game.
const (
	KindBall entity.Kind = iota
	KindPaddle
	KindBrick
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BrickChar  = '█'
)

// Controls are the movement intents the paddle reads on every update.
type Controls struct {
	Left, Right bool
}

// Ball bounces off the walls and is destroyed when it leaves through the
// bottom. Each velocity component is always ±BallVelocity.
type Ball struct {
	entity.Base
	core.Circle
	Velocity core.Vec2

	settings *Settings
}

// NewBall creates a ball centered at (x, y) heading up and to the left.
func NewBall(s *Settings, x, y float64) *Ball {
	return &Ball{
		Circle:   core.Circle{X: x, Y: y, R: s.BallRadius},
		Velocity: core.Vec2{X: -s.BallVelocity, Y: -s.BallVelocity},
		settings: s,
	}
}

func (*Ball) Kind() entity.Kind { return KindBall }

// Update moves the ball and reflects it off the left, right and top walls.
func (b *Ball) Update() {
	b.Move(b.Velocity)

	v := b.settings.BallVelocity
	if b.Left() < 0 {
		b.Velocity.X = v
	} else if b.Right() > b.settings.WindowW {
		b.Velocity.X = -v
	}

	if b.Top() < 0 {
		b.Velocity.Y = v
	} else if b.Bottom() > b.settings.WindowH {
		b.Destroy()
	}
}

func (b *Ball) Draw(c *core.Canvas) {
	c.Plot(b.X, b.Y, BallChar, b.settings.BallColor)
}

// Paddle moves horizontally while a direction is held and it has room.
type Paddle struct {
	entity.Base
	core.Rectangle
	Velocity core.Vec2

	controls *Controls
	settings *Settings
}

// NewPaddle creates a paddle centered at (x, y) steered by controls.
func NewPaddle(s *Settings, controls *Controls, x, y float64) *Paddle {
	return &Paddle{
		Rectangle: core.Rectangle{X: x, Y: y, W: s.PaddleW, H: s.PaddleH},
		controls:  controls,
		settings:  s,
	}
}

func (*Paddle) Kind() entity.Kind { return KindPaddle }

// Update derives the velocity from the controls and moves. The edge check
// happens before the move, so the paddle may overshoot by less than one step.
func (p *Paddle) Update() {
	switch {
	case p.controls.Left && p.Left() > 0:
		p.Velocity.X = -p.settings.PaddleVelocity
	case p.controls.Right && p.Right() < p.settings.WindowW:
		p.Velocity.X = p.settings.PaddleVelocity
	default:
		p.Velocity.X = 0
	}
	p.Move(p.Velocity)
}

func (p *Paddle) Draw(c *core.Canvas) {
	c.FillShape(p.Rectangle, PaddleChar, p.settings.PaddleColor)
}

// Brick loses one required hit per collision and is destroyed at zero.
type Brick struct {
	entity.Base
	core.Rectangle
	RequiredHits int
	InitialHits  int
	Color        core.Color

	settings *Settings
}

// NewBrick creates a brick centered at (x, y).
func NewBrick(s *Settings, x, y float64, hits int) *Brick {
	b := &Brick{
		Rectangle:    core.Rectangle{X: x, Y: y, W: s.BrickW, H: s.BrickH},
		RequiredHits: hits,
		InitialHits:  hits,
		settings:     s,
	}
	b.Update()
	return b
}

func (*Brick) Kind() entity.Kind { return KindBrick }

// Update picks the shade matching the remaining hits.
func (b *Brick) Update() {
	switch {
	case b.RequiredHits <= 1:
		b.Color = b.settings.BrickColors[0]
	case b.RequiredHits == 2:
		b.Color = b.settings.BrickColors[1]
	default:
		b.Color = b.settings.BrickColors[2]
	}
}

func (b *Brick) Draw(c *core.Canvas) {
	c.FillShape(b.Rectangle, BrickChar, b.Color)
}
