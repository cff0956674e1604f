// Package chime plays a short tone on every temperature change; the pitch
// rises with the temperature.
package chime

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/hashicorp/go-hclog"

	"go.hasen.dev/thermo/thermostat"
)

const (
	SampleRate = beep.SampleRate(48000)

	Duration = 120 * time.Millisecond
	Attack   = 5 * time.Millisecond
	Release  = 80 * time.Millisecond

	// the coldest temperature plays LowFrequency; the scale spans Octaves
	LowFrequency = 220.0
	Octaves      = 2.0

	Volume = 0.4
)

// Frequency maps a temperature onto the pitch of its tone
func Frequency(t int) float64 {
	var span = float64(thermostat.MaxTemperature - thermostat.MinTemperature)
	var pos = float64(t-thermostat.MinTemperature) / span
	pos = math.Max(0, math.Min(1, pos))
	return LowFrequency * math.Pow(2, Octaves*pos)
}

// Tone builds the (finite) streamer for one chime
func Tone(sr beep.SampleRate, t int) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, Frequency(t))
	if err != nil {
		return nil, fmt.Errorf("sine tone for %d: %w", t, err)
	}
	var shaped = newEnvelope(beep.Take(sr.N(Duration), sine), sr.N(Duration), sr.N(Attack), sr.N(Release))
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(Volume)}, nil
}

type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	initErr     error
	log         hclog.Logger
}

func New(log hclog.Logger) *Player {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Player{mixer: &beep.Mixer{}, log: log.Named("chime")}
}

// Init opens the audio device. Until it succeeds Play does nothing; a failed
// Init is not retried.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.initErr != nil {
		return p.initErr
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.initErr = fmt.Errorf("audio init: %w", err)
		return p.initErr
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Play(t int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := Tone(SampleRate, t)
	if err != nil {
		p.log.Warn("skipping chime", "error", err)
		return
	}
	p.log.Trace("chime", "temperature", t, "hz", Frequency(t))
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Observer adapts the player to thermostat.Model.Subscribe. enabled is asked
// on every change; the audio device is opened on the first enabled one.
func (p *Player) Observer(enabled func() bool) thermostat.Observer {
	var warned bool
	return func(s thermostat.Snapshot) {
		if !enabled() {
			return
		}
		if err := p.Init(); err != nil {
			if !warned {
				p.log.Warn("sound disabled", "error", err)
				warned = true
			}
			return
		}
		p.Play(s.Temperature)
	}
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// linear fade in and out around a sustained middle
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var vol = 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
