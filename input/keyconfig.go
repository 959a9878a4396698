package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"vitrainer/motion"
)

// actionRegistry maps canonical action names to motion kinds.
// Used by the keymap config loader to resolve TOML action strings.
var actionRegistry = map[string]motion.Kind{
	// Unbind sentinel
	"none": motion.None,

	"motion_left":      motion.Left,
	"motion_right":     motion.Right,
	"motion_up":        motion.Up,
	"motion_down":      motion.Down,
	"motion_word_next": motion.WordStart,
	"motion_word_end":  motion.WordEnd,
	"motion_word_back": motion.WordBackward,
}

// Rune aliases for keys that can't be bare single-char TOML keys.
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"quote":     '"',
}

// keymapFile is the on-disk shape of a keymap override file:
//
//	[normal]
//	h = "motion_left"
//	space = "motion_word_next"
type keymapFile struct {
	Normal map[string]string `toml:"normal"`
}

// LoadKeymap parses TOML keymap data into a sparse override table for
// Machine.ApplyKeymap. Only keys present in the data are returned.
// Unknown action names and multi-rune keys are hard errors.
func LoadKeymap(data []byte) (map[rune]motion.Kind, error) {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	overrides := make(map[rune]motion.Kind, len(file.Normal))
	for key, action := range file.Normal {
		r, err := parseKeyName(key)
		if err != nil {
			return nil, err
		}
		kind, ok := actionRegistry[action]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q for key %q", action, key)
		}
		overrides[r] = kind
	}
	return overrides, nil
}

// parseKeyName resolves a TOML key to a single rune, via the alias
// table for names that can't appear bare.
func parseKeyName(key string) (rune, error) {
	if r, ok := runeAliases[key]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("keymap: key %q must be a single character or a known alias", key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, nil
}
