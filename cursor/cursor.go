package cursor

import (
	"time"

	"vitrainer/buffer"
	"vitrainer/history"
	"vitrainer/motion"
)

const trailLen = 16

// TrailPoint is a past cursor position with the time it was left.
type TrailPoint struct {
	At  time.Time
	Pos buffer.Position
}

// Cursor applies motions to a position and owns the session memory
// that goes with it: the remembered target column for vertical motions
// and a bounded trail of recent positions for presentation.
type Cursor struct {
	pos buffer.Position

	// Sticky column for j/k, set by the last horizontal motion.
	targetCol    int
	hasTargetCol bool

	trail *history.Queue[TrailPoint]
}

func New() *Cursor {
	return &Cursor{trail: history.New[TrailPoint](trailLen)}
}

// Pos returns the current position.
func (c *Cursor) Pos() buffer.Position {
	return c.pos
}

// Reset returns the cursor to the origin and clears all memory.
// Called at round start.
func (c *Cursor) Reset() {
	c.pos = buffer.Position{}
	c.targetCol = 0
	c.hasTargetCol = false
	c.trail.Clear()
}

// ApplyMotion moves the cursor through b and reports whether the
// position changed.
//
// Vertical motions restore the remembered target column, clamped to the
// new line's length; every other motion re-anchors the target column at
// its landing column. This keeps j/k from drifting left permanently
// when crossing short lines.
func (c *Cursor) ApplyMotion(b *buffer.Buffer, m motion.Motion, count int) bool {
	from := c.pos
	c.trail.Push(TrailPoint{At: time.Now(), Pos: from})

	c.pos = m.Apply(b, c.pos, count)

	if m.IsVertical() {
		if c.hasTargetCol {
			c.pos.Col = min(c.targetCol, b.LineLen(c.pos.Row))
		}
	} else {
		c.targetCol = c.pos.Col
		c.hasTargetCol = true
	}

	return c.pos != from
}

// RecentPositions returns up to n trail points, oldest first.
func (c *Cursor) RecentPositions(n int) []TrailPoint {
	points := c.trail.Values()
	if len(points) > n {
		points = points[len(points)-n:]
	}
	return points
}
