package cursor

import (
	"testing"

	"vitrainer/buffer"
	"vitrainer/motion"
)

func TestStickyColumn(t *testing.T) {
	b := buffer.New([]string{
		"a long first line",
		"abc",
		"a much longer third line",
	})
	c := New()

	// Move right to column 5, anchoring the target column.
	if !c.ApplyMotion(b, motion.Motion{Kind: motion.Right}, 5) {
		t.Fatal("5l did not move")
	}
	if c.Pos().Col != 5 {
		t.Fatalf("expected column 5, got %d", c.Pos().Col)
	}

	// Down onto the 3-column line clamps...
	c.ApplyMotion(b, motion.Motion{Kind: motion.Down}, 1)
	if c.Pos() != (buffer.Position{Row: 1, Col: 3}) {
		t.Errorf("first j: expected {1 3}, got %v", c.Pos())
	}

	// ...and the second Down restores column 5, not column 3.
	c.ApplyMotion(b, motion.Motion{Kind: motion.Down}, 1)
	if c.Pos() != (buffer.Position{Row: 2, Col: 5}) {
		t.Errorf("second j: expected {2 5}, got %v", c.Pos())
	}
}

func TestHorizontalMotionResetsTarget(t *testing.T) {
	b := buffer.New([]string{
		"0123456789",
		"0123",
		"0123456789",
	})
	c := New()

	c.ApplyMotion(b, motion.Motion{Kind: motion.Right}, 8)
	c.ApplyMotion(b, motion.Motion{Kind: motion.Down}, 1) // clamped to short line
	c.ApplyMotion(b, motion.Motion{Kind: motion.Left}, 1) // re-anchors at col 3
	c.ApplyMotion(b, motion.Motion{Kind: motion.Down}, 1)

	if c.Pos() != (buffer.Position{Row: 2, Col: 3}) {
		t.Errorf("expected {2 3} after re-anchoring, got %v", c.Pos())
	}
}

func TestVerticalWithoutAnchorKeepsRawColumn(t *testing.T) {
	b := buffer.New([]string{"abcdef", "ab"})
	c := New()

	// No horizontal motion yet: the raw line-step column stands.
	c.ApplyMotion(b, motion.Motion{Kind: motion.Down}, 1)
	if c.Pos() != (buffer.Position{Row: 1, Col: 0}) {
		t.Errorf("expected {1 0}, got %v", c.Pos())
	}
}

func TestApplyMotionReportsMovement(t *testing.T) {
	b := buffer.New([]string{"ab"})
	c := New()

	if !c.ApplyMotion(b, motion.Motion{Kind: motion.Right}, 1) {
		t.Error("expected movement")
	}
	if c.ApplyMotion(b, motion.Motion{Kind: motion.Right}, 1) {
		t.Error("expected no movement at buffer end")
	}
	if c.ApplyMotion(b, motion.Motion{Kind: motion.Up}, 3) {
		t.Error("expected no movement on single line")
	}
}

func TestRecentPositions(t *testing.T) {
	b := buffer.New([]string{"abcdefghij"})
	c := New()

	for i := 0; i < 5; i++ {
		c.ApplyMotion(b, motion.Motion{Kind: motion.Right}, 1)
	}

	points := c.RecentPositions(3)
	if len(points) != 3 {
		t.Fatalf("expected 3 trail points, got %d", len(points))
	}
	// Oldest of the last three was left at column 2.
	if points[0].Pos.Col != 2 {
		t.Errorf("expected oldest kept point at col 2, got %d", points[0].Pos.Col)
	}
	if points[2].Pos.Col != 4 {
		t.Errorf("expected newest point at col 4, got %d", points[2].Pos.Col)
	}
}

func TestReset(t *testing.T) {
	b := buffer.New([]string{"abcdef", "abc"})
	c := New()

	c.ApplyMotion(b, motion.Motion{Kind: motion.Right}, 4)
	c.Reset()

	if c.Pos() != (buffer.Position{}) {
		t.Errorf("expected origin after reset, got %v", c.Pos())
	}
	if len(c.RecentPositions(10)) != 0 {
		t.Error("expected empty trail after reset")
	}

	// Target column memory must not survive the reset.
	c.ApplyMotion(b, motion.Motion{Kind: motion.Down}, 1)
	if c.Pos() != (buffer.Position{Row: 1, Col: 0}) {
		t.Errorf("stale target column after reset: %v", c.Pos())
	}
}
