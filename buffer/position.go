package buffer

// Direction of movement through the buffer.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Position is a (row, column) cursor coordinate. It is a plain value,
// copied freely; stepping methods mutate the receiver and report
// whether the move happened.
type Position struct {
	Row int
	Col int
}

// StepChar moves one rune in the given direction, wrapping across line
// ends: forward from the last column continues at column 0 of the next
// row, backward from column 0 lands on the last column of the previous
// row. An empty line counts as a single valid stopping column (0).
// Returns false at the absolute start or end of the buffer.
func (p *Position) StepChar(b *Buffer, d Direction) bool {
	lineLen := b.LineLen(p.Row)
	if _, ok := b.Line(p.Row); !ok {
		return false
	}

	switch d {
	case Forward:
		if p.Col+1 < lineLen {
			p.Col++
			return true
		}
		if p.Row+1 < b.Rows() {
			p.Row++
			p.Col = 0
			return true
		}
		return false
	default:
		if p.Col > 0 {
			p.Col--
			return true
		}
		if p.Row > 0 {
			p.Row--
			p.Col = max(b.LineLen(p.Row)-1, 0)
			return true
		}
		return false
	}
}

// StepCharSkipSpaces performs one StepChar, then keeps stepping while
// the landed rune is whitespace. It stops on a non-space rune, an empty
// line, or the buffer edge; it fails only when the first step fails.
func (p *Position) StepCharSkipSpaces(b *Buffer, d Direction) bool {
	if !p.StepChar(b, d) {
		return false
	}
	for b.IsSpace(*p) {
		if !p.StepChar(b, d) {
			return false
		}
	}
	return true
}

// StepLine moves one row in the given direction, clamping the column to
// the new line's last rune (0 on an empty line). Fails at the first or
// last row.
func (p *Position) StepLine(b *Buffer, d Direction) bool {
	switch d {
	case Forward:
		if p.Row+1 >= b.Rows() {
			return false
		}
		p.Row++
	default:
		if p.Row <= 0 || b.IsEmpty() {
			return false
		}
		p.Row--
	}
	p.Col = min(p.Col, max(b.LineLen(p.Row)-1, 0))
	return true
}

// FindChar scans for the next occurrence of target in the given
// direction, one StepChar at a time, without moving the receiver.
func (p Position) FindChar(b *Buffer, target rune, d Direction) (Position, bool) {
	pos := p
	for {
		if !pos.StepChar(b, d) {
			return Position{}, false
		}
		if r, ok := b.CharAt(pos); ok && r == target {
			return pos, true
		}
	}
}

// JumpToChar moves onto the next occurrence of target in the given
// direction. The receiver is unchanged when no occurrence exists.
func (p *Position) JumpToChar(b *Buffer, target rune, d Direction) bool {
	pos, ok := p.FindChar(b, target, d)
	if !ok {
		return false
	}
	*p = pos
	return true
}

// JumpBeforeChar moves one rune short of the next occurrence of target,
// stepping back in the opposite direction after the match. Fails when
// either the search or the back-step fails.
func (p *Position) JumpBeforeChar(b *Buffer, target rune, d Direction) bool {
	pos, ok := p.FindChar(b, target, d)
	if !ok {
		return false
	}
	if !pos.StepChar(b, d.Opposite()) {
		return false
	}
	*p = pos
	return true
}
