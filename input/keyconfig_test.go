package input

import (
	"testing"

	"vitrainer/motion"
)

func TestLoadKeymap(t *testing.T) {
	data := []byte(`
[normal]
a = "motion_left"
space = "motion_word_next"
w = "none"
`)

	overrides, err := LoadKeymap(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overrides) != 3 {
		t.Fatalf("expected 3 overrides, got %d", len(overrides))
	}
	if overrides['a'] != motion.Left {
		t.Errorf("a: expected Left, got %d", overrides['a'])
	}
	if overrides[' '] != motion.WordStart {
		t.Errorf("space: expected WordStart, got %d", overrides[' '])
	}
	if overrides['w'] != motion.None {
		t.Errorf("w: expected None, got %d", overrides['w'])
	}
}

func TestLoadKeymapUnknownAction(t *testing.T) {
	data := []byte(`
[normal]
h = "motion_teleport"
`)

	if _, err := LoadKeymap(data); err == nil {
		t.Error("expected error for unknown action name")
	}
}

func TestLoadKeymapMultiRuneKey(t *testing.T) {
	data := []byte(`
[normal]
hh = "motion_left"
`)

	if _, err := LoadKeymap(data); err == nil {
		t.Error("expected error for multi-rune key")
	}
}

func TestLoadKeymapMalformedTOML(t *testing.T) {
	if _, err := LoadKeymap([]byte("[normal\nbroken")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadKeymapEmpty(t *testing.T) {
	overrides, err := LoadKeymap(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overrides) != 0 {
		t.Errorf("expected no overrides, got %d", len(overrides))
	}
}

func TestLoadKeymapAppliesToMachine(t *testing.T) {
	data := []byte(`
[normal]
n = "motion_word_end"
`)

	overrides, err := LoadKeymap(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewMachine()
	m.ApplyKeymap(overrides)

	act := m.HandleKey(RuneEvent('n'))
	if act.Type != ActionMotion || act.Motion.Kind != motion.WordEnd {
		t.Errorf("n: expected WordEnd, got %+v", act)
	}
}
