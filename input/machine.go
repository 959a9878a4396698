package input

import (
	"vitrainer/history"
	"vitrainer/motion"
)

const (
	keyHistoryLen    = 32
	motionHistoryLen = 8
)

// machineState tracks the multi-key parse in progress.
type machineState uint8

const (
	stateIdle        machineState = iota // awaiting initial key
	stateCounting                        // accumulating numeric prefix
	stateAwaitTarget                     // after f/F/t/T, awaiting target character
	stateAwaitCombo                      // after a combo prefix (:), awaiting second key
)

// Machine turns a stream of key events into actions, one per keystroke.
// It owns the pending parse state and the bounded key and motion
// histories backing the ';'/',' repeat and the recent-keys readout.
//
// Events must be delivered one at a time in arrival order; reordering
// two keys changes the resolved command.
type Machine struct {
	state   machineState
	count   int         // pending repeat prefix, 0 = none
	pending motion.Kind // find/till kind awaiting its target
	prefix  rune        // combo prefix key

	// Partial command for status-line feedback.
	cmdBuffer []rune

	// Simple-motion rune bindings, overridable via keymap config.
	motions map[rune]motion.Kind

	keyHistory    *history.Queue[KeyEvent]
	motionHistory *history.Queue[motion.Motion]
}

func NewMachine() *Machine {
	return &Machine{
		cmdBuffer:     make([]rune, 0, 16),
		motions:       defaultMotionTable(),
		keyHistory:    history.New[KeyEvent](keyHistoryLen),
		motionHistory: history.New[motion.Motion](motionHistoryLen),
	}
}

// Reset clears the parse state and both histories. Called at round start.
func (m *Machine) Reset() {
	m.toIdle()
	m.keyHistory.Clear()
	m.motionHistory.Clear()
}

// toIdle drops any partial command without touching the histories.
func (m *Machine) toIdle() {
	m.state = stateIdle
	m.count = 0
	m.pending = motion.None
	m.prefix = 0
}

// PendingCommand returns the keys of the in-progress sequence for
// status-line display, empty when idle.
func (m *Machine) PendingCommand() string {
	return string(m.cmdBuffer)
}

// RecentKeys returns processed key events, newest first.
func (m *Machine) RecentKeys() []KeyEvent {
	return m.keyHistory.RecentFirst()
}

// LastMotion returns the most recently resolved motion.
func (m *Machine) LastMotion() (motion.Motion, bool) {
	return m.motionHistory.Last()
}

// HandleKey processes one key event and returns the resolved action.
// Every event lands in the key history regardless of its effect.
func (m *Machine) HandleKey(ev KeyEvent) Action {
	var act Action
	switch m.state {
	case stateIdle:
		act = m.handleIdle(ev)
	case stateCounting:
		act = m.handleCounting(ev)
	case stateAwaitTarget:
		act = m.handleTarget(ev)
	case stateAwaitCombo:
		act = m.handleCombo(ev)
	}

	if act.Type == ActionPending && ev.Key == KeyRune {
		m.cmdBuffer = append(m.cmdBuffer, ev.Rune)
	} else {
		m.cmdBuffer = m.cmdBuffer[:0]
	}

	m.keyHistory.Push(ev)
	return act
}

func (m *Machine) handleIdle(ev KeyEvent) Action {
	if ev.Key != KeyRune || ev.Mod != ModNone {
		return noop
	}

	r := ev.Rune
	if r >= '1' && r <= '9' {
		m.count = int(r - '0')
		m.state = stateCounting
		return pending
	}

	if kind, ok := findTillKind(r); ok {
		m.pending = kind
		m.state = stateAwaitTarget
		return pending
	}

	switch r {
	case ';':
		if last, ok := m.motionHistory.Last(); ok && last.IsFindTill() {
			return singleMotion(last)
		}
		return noop
	case ',':
		if last, ok := m.motionHistory.Last(); ok {
			if rev, ok := last.ReverseFindTill(); ok {
				return singleMotion(rev)
			}
		}
		return noop
	case ':':
		m.prefix = r
		m.state = stateAwaitCombo
		return pending
	}

	if kind, ok := m.motions[r]; ok {
		mo := motion.Motion{Kind: kind}
		m.motionHistory.Push(mo)
		return singleMotion(mo)
	}
	return noop
}

func (m *Machine) handleCounting(ev KeyEvent) Action {
	if ev.Key == KeyRune && ev.Mod == ModNone {
		r := ev.Rune

		// Any further digit extends the count, '0' included.
		if r >= '0' && r <= '9' {
			m.count = m.count*10 + int(r-'0')
			return pending
		}

		if kind, ok := findTillKind(r); ok {
			m.pending = kind
			m.state = stateAwaitTarget
			return pending
		}

		if kind, ok := m.motions[r]; ok {
			count := m.count
			m.toIdle()
			mo := motion.Motion{Kind: kind}
			m.motionHistory.Push(mo)
			return repeatedMotion(mo, count)
		}
	}

	m.toIdle()
	return noop
}

func (m *Machine) handleTarget(ev KeyEvent) Action {
	// Non-character input abandons target acquisition.
	if ev.Key != KeyRune {
		m.toIdle()
		return noop
	}

	mo := motion.Find(m.pending, ev.Rune)
	count := m.count
	m.toIdle()
	m.motionHistory.Push(mo)

	if count > 0 {
		return repeatedMotion(mo, count)
	}
	return singleMotion(mo)
}

func (m *Machine) handleCombo(ev KeyEvent) Action {
	prefix := m.prefix
	m.toIdle()

	if prefix != ':' || ev.Key != KeyRune || ev.Mod != ModNone {
		return noop
	}
	switch ev.Rune {
	case 'q':
		return Action{Type: ActionQuit}
	case 'n':
		return Action{Type: ActionNewGame}
	}
	return noop
}

// findTillKind maps the four target-acquiring keys to their motion kind.
func findTillKind(r rune) (motion.Kind, bool) {
	switch r {
	case 'f':
		return motion.FindNext, true
	case 'F':
		return motion.FindPrev, true
	case 't':
		return motion.TillNext, true
	case 'T':
		return motion.TillPrev, true
	}
	return motion.None, false
}
