package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Bell plays a short error tone when a motion cannot move the cursor.
// Audio is best-effort: if the speaker fails to initialize, Ring is a
// no-op and the trainer stays silent.
type Bell struct {
	enabled bool
}

// NewBell initializes the speaker. The returned error is informational;
// the Bell is usable (silently) either way.
func NewBell() (*Bell, error) {
	b := &Bell{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return b, err
	}
	b.enabled = true
	return b, nil
}

// Ring plays a 50ms 880Hz tone. No-op when audio is disabled.
func (b *Bell) Ring() {
	if !b.enabled {
		return
	}

	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

// Close releases the speaker.
func (b *Bell) Close() {
	if b.enabled {
		speaker.Close()
	}
}
