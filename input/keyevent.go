package input

// Key is a logical key code, independent of any terminal library.
// The presentation layer translates its event source into these.
type Key uint8

const (
	KeyRune Key = iota // printable character, see KeyEvent.Rune
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Mod is a bitmask of key modifiers.
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is a single logical keystroke. Shifted letters arrive as
// their uppercase rune with no modifier set.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// RuneEvent builds a plain character keystroke.
func RuneEvent(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// String renders the event for the recent-keys readout.
func (ev KeyEvent) String() string {
	if ev.Key == KeyRune {
		return string(ev.Rune)
	}
	switch ev.Key {
	case KeyEscape:
		return "<esc>"
	case KeyEnter:
		return "<cr>"
	case KeyBackspace:
		return "<bs>"
	case KeyTab:
		return "<tab>"
	case KeyUp:
		return "<up>"
	case KeyDown:
		return "<down>"
	case KeyLeft:
		return "<left>"
	case KeyRight:
		return "<right>"
	}
	return "<?>"
}
