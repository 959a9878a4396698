package motion

import (
	"unicode"

	"vitrainer/buffer"
)

// WordBoundaries returns the start and end columns of the word run
// containing col on the given line.
//
// A word is either a maximal run of letters, digits and underscores, or
// a maximal run of other non-blank characters (punctuation); the two
// classes never merge. Returns false when col is out of range or
// addresses whitespace.
func WordBoundaries(line string, col int) (start, end int, ok bool) {
	chars := []rune(line)
	if col < 0 || col >= len(chars) {
		return 0, 0, false
	}
	if unicode.IsSpace(chars[col]) {
		return 0, 0, false
	}

	sameClass := isWordChar
	if !isWordChar(chars[col]) {
		sameClass = isPunctChar
	}

	start, end = col, col
	for start > 0 && sameClass(chars[start-1]) {
		start--
	}
	for end+1 < len(chars) && sameClass(chars[end+1]) {
		end++
	}
	return start, end, true
}

// isWordChar reports whether r belongs to the alphanumeric/underscore class.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isPunctChar reports whether r belongs to the punctuation-run class.
func isPunctChar(r rune) bool {
	return !unicode.IsSpace(r) && !isWordChar(r)
}

// wordStartOnce jumps forward to the start of the next word, stopping
// on an empty line.
func wordStartOnce(b *buffer.Buffer, pos *buffer.Position) bool {
	line, ok := b.Line(pos.Row)
	if !ok {
		return false
	}

	// Inside a run: move to its end first, then cross the whitespace.
	if _, end, onWord := WordBoundaries(line, pos.Col); onWord {
		pos.Col = end
	}
	return pos.StepCharSkipSpaces(b, buffer.Forward)
}

// wordEndOnce steps forward to the end of the current or next word.
// Never stops on an empty line.
func wordEndOnce(b *buffer.Buffer, pos *buffer.Position) bool {
	for {
		if !pos.StepChar(b, buffer.Forward) {
			return false
		}

		line, ok := b.Line(pos.Row)
		if !ok {
			return false
		}

		if _, end, onWord := WordBoundaries(line, pos.Col); onWord {
			pos.Col = end
			return true
		}
		// On whitespace or an empty line, keep moving.
	}
}

// wordBackwardOnce jumps backward to the start of the current word, or
// of the previous run when already at the current run's start.
func wordBackwardOnce(b *buffer.Buffer, pos *buffer.Position) bool {
	line, ok := b.Line(pos.Row)
	if !ok {
		return false
	}

	start, _, onWord := WordBoundaries(line, pos.Col)
	if !onWord {
		// On a space, a single left step is enough.
		return pos.StepChar(b, buffer.Backward)
	}

	if pos.Col != start {
		pos.Col = start
		return true
	}

	// Already at the run's start: cross the whitespace, then snap to the
	// start of whatever run we land in.
	if !pos.StepCharSkipSpaces(b, buffer.Backward) {
		return false
	}
	line, ok = b.Line(pos.Row)
	if !ok {
		return false
	}
	if prevStart, _, onPrev := WordBoundaries(line, pos.Col); onPrev {
		pos.Col = prevStart
	}
	return true
}
