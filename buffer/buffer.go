package buffer

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Buffer is an ordered sequence of text lines addressed by row, with
// columns counted in runes. It carries no cursor or motion state; the
// layer that owns it mutates it, everything else only reads.
type Buffer struct {
	lines []string
}

// New wraps the given lines in a Buffer. The slice is not copied.
func New(lines []string) *Buffer {
	return &Buffer{lines: lines}
}

// FromText splits text on newlines and builds a buffer from the result.
// A trailing newline does not produce a final empty row.
func FromText(text string) *Buffer {
	text = strings.TrimSuffix(text, "\n")
	b := &Buffer{}
	for _, line := range strings.Split(text, "\n") {
		b.PushLine(line)
	}
	return b
}

// Rows returns the number of rows, including empty lines.
func (b *Buffer) Rows() int {
	return len(b.lines)
}

// IsEmpty reports whether the buffer has no rows at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Line returns the line at row, or false if row is out of range.
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 || row >= len(b.lines) {
		return "", false
	}
	return b.lines[row], true
}

// LineLen returns the rune count of the line at row, 0 if out of range.
func (b *Buffer) LineLen(row int) int {
	line, ok := b.Line(row)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(line)
}

// CharAt returns the rune at pos, or false if the row is out of range
// or the column is past the end of the line.
func (b *Buffer) CharAt(pos Position) (rune, bool) {
	line, ok := b.Line(pos.Row)
	if !ok || pos.Col < 0 {
		return 0, false
	}
	i := 0
	for _, r := range line {
		if i == pos.Col {
			return r, true
		}
		i++
	}
	return 0, false
}

// IsSpace reports whether the rune at pos exists and is whitespace.
// An out-of-range position is not space.
func (b *Buffer) IsSpace(pos Position) bool {
	r, ok := b.CharAt(pos)
	return ok && unicode.IsSpace(r)
}

// IsEmptyLine reports whether the line at pos.Row has zero length.
// An out-of-range row is not an empty line.
func (b *Buffer) IsEmptyLine(pos Position) bool {
	line, ok := b.Line(pos.Row)
	return ok && len(line) == 0
}

// InsertLine inserts a line at row, shifting existing lines down.
// Rows past the end append.
func (b *Buffer) InsertLine(row int, line string) {
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		b.lines = append(b.lines, line)
		return
	}
	b.lines = append(b.lines[:row], append([]string{line}, b.lines[row:]...)...)
}

// PushLine appends a line at the end of the buffer.
func (b *Buffer) PushLine(line string) {
	b.lines = append(b.lines, line)
}

// InsertChar inserts a rune at pos, shifting the rest of the line right.
// Out-of-range rows or columns are ignored.
func (b *Buffer) InsertChar(pos Position, c rune) {
	line, ok := b.Line(pos.Row)
	if !ok {
		return
	}
	runes := []rune(line)
	if pos.Col < 0 || pos.Col > len(runes) {
		return
	}
	runes = append(runes[:pos.Col], append([]rune{c}, runes[pos.Col:]...)...)
	b.lines[pos.Row] = string(runes)
}

// DeleteChar removes the rune at pos. Out-of-range positions are ignored.
func (b *Buffer) DeleteChar(pos Position) {
	line, ok := b.Line(pos.Row)
	if !ok {
		return
	}
	runes := []rune(line)
	if pos.Col < 0 || pos.Col >= len(runes) {
		return
	}
	b.lines[pos.Row] = string(append(runes[:pos.Col], runes[pos.Col+1:]...))
}

// RandomPosition returns a uniformly chosen position on a non-empty line.
// With allowSpace false the position lands on a non-whitespace rune.
// Returns false when the buffer has no line that can satisfy the request.
func (b *Buffer) RandomPosition(allowSpace bool) (Position, bool) {
	if !b.hasCandidate(0, b.Rows()-1, allowSpace) {
		return Position{}, false
	}

	for {
		row := rand.Intn(b.Rows())
		lineLen := b.LineLen(row)
		if lineLen == 0 {
			continue
		}
		pos := Position{Row: row, Col: rand.Intn(lineLen)}
		if allowSpace || !b.IsSpace(pos) {
			return pos, true
		}
	}
}

// RandomPositionNear returns a random position within radius rows and
// columns of start, subject to the same allowSpace rule. The window is
// small and bounded, so candidates are enumerated rather than sampled
// by rejection; returns false when the window holds none.
func (b *Buffer) RandomPositionNear(start Position, radius int, allowSpace bool) (Position, bool) {
	if b.IsEmpty() || radius < 0 {
		return Position{}, false
	}

	startRow := max(start.Row-radius, 0)
	endRow := min(start.Row+radius, b.Rows()-1)

	var candidates []Position
	for row := startRow; row <= endRow; row++ {
		lineLen := b.LineLen(row)
		if lineLen == 0 {
			continue
		}
		lo := max(start.Col-radius, 0)
		hi := min(start.Col+radius, lineLen-1)
		for col := lo; col <= hi; col++ {
			pos := Position{Row: row, Col: col}
			if allowSpace || !b.IsSpace(pos) {
				candidates = append(candidates, pos)
			}
		}
	}

	if len(candidates) == 0 {
		return Position{}, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

// hasCandidate reports whether any row in [startRow, endRow] holds a
// rune satisfying the allowSpace rule, so RandomPosition's retry loop
// terminates.
func (b *Buffer) hasCandidate(startRow, endRow int, allowSpace bool) bool {
	for row := max(startRow, 0); row <= endRow && row < b.Rows(); row++ {
		line, _ := b.Line(row)
		if allowSpace {
			if len(line) > 0 {
				return true
			}
			continue
		}
		for _, r := range line {
			if !unicode.IsSpace(r) {
				return true
			}
		}
	}
	return false
}

// String renders the buffer with a trailing newline per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
