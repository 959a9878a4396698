package motion

import (
	"fmt"

	"vitrainer/buffer"
)

// Kind identifies the motion algorithm.
type Kind uint8

const (
	None         Kind = iota // zero value, moves nothing
	Left                     // h
	Down                     // j
	Up                       // k
	Right                    // l
	WordStart                // w - start of next word
	WordEnd                  // e - end of current/next word
	WordBackward             // b - start of previous word
	FindNext                 // f{char}
	FindPrev                 // F{char}
	TillNext                 // t{char}
	TillPrev                 // T{char}
)

// Motion is a cursor-movement command. Target carries the character
// payload for the four find/till kinds and is zero otherwise.
type Motion struct {
	Kind   Kind
	Target rune
}

// Find builds a find/till motion with its target character.
func Find(kind Kind, target rune) Motion {
	return Motion{Kind: kind, Target: target}
}

// IsVertical reports whether the motion moves across lines (j/k only).
func (m Motion) IsVertical() bool {
	return m.Kind == Up || m.Kind == Down
}

// IsFindTill reports whether the motion is character-targeted.
func (m Motion) IsFindTill() bool {
	switch m.Kind {
	case FindNext, FindPrev, TillNext, TillPrev:
		return true
	}
	return false
}

// ReverseFindTill returns the same motion with the search direction
// flipped, as used by the ',' repeat. Non find/till motions return false.
func (m Motion) ReverseFindTill() (Motion, bool) {
	switch m.Kind {
	case FindNext:
		return Motion{Kind: FindPrev, Target: m.Target}, true
	case FindPrev:
		return Motion{Kind: FindNext, Target: m.Target}, true
	case TillNext:
		return Motion{Kind: TillPrev, Target: m.Target}, true
	case TillPrev:
		return Motion{Kind: TillNext, Target: m.Target}, true
	}
	return Motion{}, false
}

// Apply moves pos through buf count times, applying the single-step
// motion once per iteration and stopping early when a step cannot make
// progress. Partial progress is kept, never rolled back. A count below
// 1 means a single application.
func (m Motion) Apply(b *buffer.Buffer, pos buffer.Position, count int) buffer.Position {
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		if !m.step(b, &pos) {
			break
		}
	}
	return pos
}

// step applies the atomic one-repeat version of the motion.
func (m Motion) step(b *buffer.Buffer, pos *buffer.Position) bool {
	switch m.Kind {
	case Left:
		return pos.StepChar(b, buffer.Backward)
	case Right:
		return pos.StepChar(b, buffer.Forward)
	case Down:
		return pos.StepLine(b, buffer.Forward)
	case Up:
		return pos.StepLine(b, buffer.Backward)
	case WordStart:
		return wordStartOnce(b, pos)
	case WordEnd:
		return wordEndOnce(b, pos)
	case WordBackward:
		return wordBackwardOnce(b, pos)
	case FindNext:
		return pos.JumpToChar(b, m.Target, buffer.Forward)
	case FindPrev:
		return pos.JumpToChar(b, m.Target, buffer.Backward)
	case TillNext:
		return pos.JumpBeforeChar(b, m.Target, buffer.Forward)
	case TillPrev:
		return pos.JumpBeforeChar(b, m.Target, buffer.Backward)
	}
	return false
}

// String renders the motion in key notation ("w", "fx", "T;"),
// for status-line display.
func (m Motion) String() string {
	switch m.Kind {
	case Left:
		return "h"
	case Down:
		return "j"
	case Up:
		return "k"
	case Right:
		return "l"
	case WordStart:
		return "w"
	case WordEnd:
		return "e"
	case WordBackward:
		return "b"
	case FindNext:
		return "f" + string(m.Target)
	case FindPrev:
		return "F" + string(m.Target)
	case TillNext:
		return "t" + string(m.Target)
	case TillPrev:
		return "T" + string(m.Target)
	case None:
		return ""
	}
	return fmt.Sprintf("motion(%d)", m.Kind)
}
