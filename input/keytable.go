package input

import "vitrainer/motion"

// defaultMotionTable returns the default rune bindings for simple
// motions. Count prefixes, find/till, repeats and combos are fixed
// machine behavior, not table entries.
func defaultMotionTable() map[rune]motion.Kind {
	return map[rune]motion.Kind{
		'h': motion.Left,
		'j': motion.Down,
		'k': motion.Up,
		'l': motion.Right,
		'w': motion.WordStart,
		'e': motion.WordEnd,
		'b': motion.WordBackward,
	}
}

// ApplyKeymap merges keymap overrides into the motion table. A binding
// to motion.None unbinds the key.
func (m *Machine) ApplyKeymap(overrides map[rune]motion.Kind) {
	for r, kind := range overrides {
		if kind == motion.None {
			delete(m.motions, r)
			continue
		}
		m.motions[r] = kind
	}
}
