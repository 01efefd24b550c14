package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/invaders/assets"
	"github.com/plus3/invaders/ecs"
)

// AudioSystem drains the SoundQueue into ebiten audio players. Constructed
// only when sound is enabled; without it the queue is drained by a
// DrainSoundsSystem so it cannot grow unbounded.
type AudioSystem struct {
	Sounds ecs.Singleton[SoundQueue]

	players map[SoundID]*audio.Player
}

// NewAudioSystem synthesizes the effect tones and prepares a player per
// effect. The context sample rate must match assets.SampleRate.
func NewAudioSystem(ctx *audio.Context) *AudioSystem {
	return &AudioSystem{
		players: map[SoundID]*audio.Player{
			SoundShoot:      ctx.NewPlayerFromBytes(assets.ShootTone()),
			SoundHit:        ctx.NewPlayerFromBytes(assets.HitTone()),
			SoundAlienShoot: ctx.NewPlayerFromBytes(assets.AlienShootTone()),
		},
	}
}

func (s *AudioSystem) Execute(frame *ecs.UpdateFrame) {
	queue := s.Sounds.Get()
	for _, id := range queue.Pending {
		player := s.players[id]
		if player == nil {
			continue
		}
		// Restarting an in-flight effect is close enough to overlapping
		// playback for beeps this short.
		player.Rewind()
		player.Play()
	}
	queue.Pending = queue.Pending[:0]
}

// DrainSoundsSystem discards queued sounds when audio is muted.
type DrainSoundsSystem struct {
	Sounds ecs.Singleton[SoundQueue]
}

func (s *DrainSoundsSystem) Execute(frame *ecs.UpdateFrame) {
	queue := s.Sounds.Get()
	queue.Pending = queue.Pending[:0]
}
