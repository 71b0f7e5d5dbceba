// internal/audio/audio.go
package audio

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"vector-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Service turns gameplay events into short synthesized tones. It subscribes
// to the simulation's event dispatcher and plays through the speaker's own
// mixing goroutine; the frame loop never blocks on it. If the speaker
// cannot initialize, the service stays in silent mode.
type Service struct {
	enabled bool
	volume  float64
}

// NewService initializes the speaker. Errors degrade to silent mode rather
// than failing the game.
func NewService(enabled bool, volume float64) *Service {
	s := &Service{enabled: enabled, volume: volume}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Warn("audio unavailable, running silent", "err", err)
		s.enabled = false
	}
	return s
}

// Attach subscribes the service to every event it has a cue for.
func (s *Service) Attach(d *event.Dispatcher) {
	for _, t := range []event.Type{
		event.ShotFired,
		event.EnemyKilled,
		event.CoreDamaged,
		event.PowerUpCollected,
		event.PulseFired,
		event.BossSpawned,
		event.WaveStarted,
		event.WaveEnded,
		event.GameOver,
	} {
		d.Subscribe(t, s)
	}
}

// OnEvent implements event.Listener.
func (s *Service) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		s.tone(880, 30*time.Millisecond)
	case event.EnemyKilled:
		s.tone(440, 60*time.Millisecond)
	case event.CoreDamaged:
		s.tone(110, 200*time.Millisecond)
	case event.PowerUpCollected:
		s.tone(1320, 120*time.Millisecond)
	case event.PulseFired:
		s.tone(220, 300*time.Millisecond)
	case event.BossSpawned:
		s.tone(165, 400*time.Millisecond)
	case event.WaveStarted:
		s.tone(660, 120*time.Millisecond)
	case event.WaveEnded:
		s.tone(990, 200*time.Millisecond)
	case event.GameOver:
		s.tone(82, 600*time.Millisecond)
	}
}

func (s *Service) tone(freq float64, duration time.Duration) {
	if !s.enabled {
		return
	}
	streamer, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(duration), streamer),
		Base:     2,
		Volume:   (s.volume - 1) * 5,
		Silent:   s.volume <= 0,
	})
}
