package input

import "vitrainer/motion"

// ActionType discriminates the outcome of one keystroke.
type ActionType uint8

const (
	ActionNoop    ActionType = iota // key had no effect
	ActionPending                   // multi-key sequence in progress
	ActionMotion                    // resolved motion, see Motion/Count
	ActionQuit                      // :q
	ActionNewGame                   // :n
)

// Action is the resolved result of one key event. Count is 0 when the
// motion applies once, otherwise the numeric repeat prefix.
type Action struct {
	Type   ActionType
	Motion motion.Motion
	Count  int
}

var (
	noop    = Action{Type: ActionNoop}
	pending = Action{Type: ActionPending}
)

func singleMotion(m motion.Motion) Action {
	return Action{Type: ActionMotion, Motion: m}
}

func repeatedMotion(m motion.Motion, count int) Action {
	return Action{Type: ActionMotion, Motion: m, Count: count}
}
