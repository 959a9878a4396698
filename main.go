package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"vitrainer/audio"
	"vitrainer/buffer"
	"vitrainer/cursor"
	"vitrainer/input"
	"vitrainer/motion"
)

const (
	errorBlinkMs  = 500
	cursorBlinkMs = 500
	trailDecayMs  = 400
)

var sampleText = `package main

import "fmt"

func main() {
	count := 0
	for i := 0; i < 10; i++ {
		count += i * 2
	}
	fmt.Println("total:", count)
}

// Practice targets: foo->bar = '*=*';
// The quick brown fox jumps over the lazy dog.`

type Trainer struct {
	screen        tcell.Screen
	width, height int

	buf     *buffer.Buffer
	cur     *cursor.Cursor
	machine *input.Machine
	bell    *audio.Bell

	// Practice target the player navigates to
	target    buffer.Position
	hasTarget bool
	hits      int

	// Cursor feedback
	cursorVisible   bool
	cursorError     bool
	cursorErrorTime time.Time
	cursorBlinkTime time.Time
}

func NewTrainer(buf *buffer.Buffer, keymapPath string) (*Trainer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &Trainer{
		screen:          screen,
		buf:             buf,
		cur:             cursor.New(),
		machine:         input.NewMachine(),
		cursorVisible:   true,
		cursorBlinkTime: time.Now(),
	}

	t.width, t.height = screen.Size()

	if keymapPath != "" {
		if err := t.loadKeymap(keymapPath); err != nil {
			screen.Fini()
			return nil, err
		}
	}

	// Non-fatal, trainer can run without sound
	bell, err := audio.NewBell()
	if err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	t.bell = bell

	t.spawnTarget()
	return t, nil
}

func (t *Trainer) loadKeymap(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read keymap %s: %w", path, err)
	}
	overrides, err := input.LoadKeymap(data)
	if err != nil {
		return err
	}
	t.machine.ApplyKeymap(overrides)
	return nil
}

// spawnTarget places a practice target on a random non-space character
// away from the cursor. Navigation exercises are pointless when the
// target is already under the cursor.
func (t *Trainer) spawnTarget() {
	for range 10 {
		pos, ok := t.buf.RandomPosition(false)
		if !ok {
			t.hasTarget = false
			return
		}
		if pos != t.cur.Pos() {
			t.target = pos
			t.hasTarget = true
			return
		}
	}
	t.hasTarget = false
}

func (t *Trainer) flashError() {
	t.cursorError = true
	t.cursorErrorTime = time.Now()
	if t.bell != nil {
		t.bell.Ring()
	}
}

// handleKey feeds one key into the state machine and applies the
// resulting action. Returns false when the trainer should exit.
func (t *Trainer) handleKey(ev input.KeyEvent) bool {
	act := t.machine.HandleKey(ev)

	switch act.Type {
	case input.ActionQuit:
		return false

	case input.ActionNewGame:
		t.reset()

	case input.ActionMotion:
		count := act.Count
		if count == 0 {
			count = 1
		}
		if !t.cur.ApplyMotion(t.buf, act.Motion, count) {
			t.flashError()
			break
		}
		t.cursorVisible = true
		t.cursorBlinkTime = time.Now()
		if t.hasTarget && t.cur.Pos() == t.target {
			t.hits++
			t.spawnTarget()
		}

	case input.ActionNoop:
		// 'x' is edit glue outside the motion machine.
		if ev.Key == input.KeyRune && ev.Rune == 'x' {
			t.deleteUnderCursor()
		}
	}

	return true
}

func (t *Trainer) reset() {
	t.cur.Reset()
	t.machine.Reset()
	t.hits = 0
	t.spawnTarget()
}

func (t *Trainer) deleteUnderCursor() {
	pos := t.cur.Pos()
	if _, ok := t.buf.CharAt(pos); !ok {
		t.flashError()
		return
	}
	t.buf.DeleteChar(pos)
	// Keep the cursor on a valid column after shortening the line.
	if l := t.buf.LineLen(pos.Row); pos.Col >= l && l > 0 {
		t.cur.ApplyMotion(t.buf, motion.Motion{Kind: motion.Left}, 1)
	}
	if t.hasTarget && t.target.Row == pos.Row && t.target.Col >= pos.Col {
		t.spawnTarget()
	}
}

func (t *Trainer) translateKey(ev *tcell.EventKey) (input.KeyEvent, bool) {
	var mod input.Mod
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return input.KeyEvent{Key: input.KeyRune, Rune: ev.Rune(), Mod: mod}, true
	case tcell.KeyEscape:
		return input.KeyEvent{Key: input.KeyEscape, Mod: mod}, true
	case tcell.KeyEnter:
		return input.KeyEvent{Key: input.KeyEnter, Mod: mod}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyEvent{Key: input.KeyBackspace, Mod: mod}, true
	case tcell.KeyTab:
		return input.KeyEvent{Key: input.KeyTab, Mod: mod}, true
	case tcell.KeyLeft:
		return input.KeyEvent{Key: input.KeyLeft, Mod: mod}, true
	case tcell.KeyRight:
		return input.KeyEvent{Key: input.KeyRight, Mod: mod}, true
	case tcell.KeyUp:
		return input.KeyEvent{Key: input.KeyUp, Mod: mod}, true
	case tcell.KeyDown:
		return input.KeyEvent{Key: input.KeyDown, Mod: mod}, true
	}
	return input.KeyEvent{}, false
}

func (t *Trainer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		key, ok := t.translateKey(ev)
		if !ok {
			return true
		}
		return t.handleKey(key)

	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
	}

	return true
}

// drawLine renders one buffer line, advancing by display width so wide
// runes occupy their proper cells.
func (t *Trainer) drawLine(row int, line string, style tcell.Style) {
	x := 0
	for _, r := range line {
		if x >= t.width {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// colFor converts a rune column to a display column for rendering.
func colFor(line string, col int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (t *Trainer) draw() {
	t.screen.Clear()

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for row := 0; row < t.buf.Rows() && row < t.height-1; row++ {
		line, _ := t.buf.Line(row)
		t.drawLine(row, line, textStyle)
	}

	// Trail fades behind the cursor
	now := time.Now()
	for _, tp := range t.cur.RecentPositions(8) {
		age := now.Sub(tp.At).Milliseconds()
		if age < 0 || age > trailDecayMs {
			continue
		}
		intensity := int32(255 * (trailDecayMs - age) / trailDecayMs)
		line, _ := t.buf.Line(tp.Pos.Row)
		color := tcell.NewRGBColor(intensity, intensity, intensity)
		t.screen.SetContent(colFor(line, tp.Pos.Col), tp.Pos.Row, '·', nil,
			tcell.StyleDefault.Foreground(color))
	}

	// Practice target
	if t.hasTarget {
		if ch, ok := t.buf.CharAt(t.target); ok {
			line, _ := t.buf.Line(t.target.Row)
			style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true).Underline(true)
			t.screen.SetContent(colFor(line, t.target.Col), t.target.Row, ch, nil, style)
		}
	}

	// Cursor with error blink
	if t.cursorError && now.Sub(t.cursorErrorTime).Milliseconds() > errorBlinkMs {
		t.cursorError = false
	}
	if now.Sub(t.cursorBlinkTime).Milliseconds() > cursorBlinkMs {
		t.cursorVisible = !t.cursorVisible
		t.cursorBlinkTime = now
	}
	if t.cursorVisible {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
		if t.cursorError {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
		}
		pos := t.cur.Pos()
		ch := ' '
		if r, ok := t.buf.CharAt(pos); ok {
			ch = r
		}
		line, _ := t.buf.Line(pos.Row)
		t.screen.SetContent(colFor(line, pos.Col), pos.Row, ch, nil, style)
	}

	t.drawStatus()
	t.screen.Show()
}

func (t *Trainer) drawStatus() {
	pos := t.cur.Pos()
	status := fmt.Sprintf(" %d,%d  hits:%d  %s", pos.Row+1, pos.Col+1, t.hits,
		t.machine.PendingCommand())

	// Newest-first history, rendered oldest to newest.
	keys := t.machine.RecentKeys()
	if len(keys) > 8 {
		keys = keys[:8]
	}
	recent := ""
	for i := len(keys) - 1; i >= 0; i-- {
		recent += keys[i].String()
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	row := t.height - 1
	for x := 0; x < t.width; x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}
	t.drawLine(row, status, style)
	if w := runewidth.StringWidth(recent); w < t.width {
		x := t.width - w - 1
		for _, r := range recent {
			t.screen.SetContent(x, row, r, nil, style.Foreground(tcell.ColorGray))
			x += runewidth.RuneWidth(r)
		}
	}
}

func (t *Trainer) run() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
			t.draw()

		case <-ticker.C:
			t.draw()
		}
	}
}

func (t *Trainer) cleanup() {
	if t.bell != nil {
		t.bell.Close()
	}
	t.screen.Fini()
}

func loadBuffer(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.FromText(sampleText), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	buf := buffer.FromText(string(data))
	if buf.IsEmpty() {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	return buf, nil
}

func main() {
	keymapPath := flag.String("keymap", "", "path to TOML keymap override file")
	flag.Parse()

	buf, err := loadBuffer(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load text: %v\n", err)
		os.Exit(1)
	}

	trainer, err := NewTrainer(buf, *keymapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer trainer.cleanup()

	trainer.run()
}
