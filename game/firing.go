package game

import (
	"math/rand/v2"

	"github.com/plus3/invaders/ecs"
)

// FiringSystem lets a random alien take a shot whenever the fire cooldown
// elapses. The cooldown length comes from the difficulty.
type FiringSystem struct {
	Session   ecs.Singleton[Session]
	FireClock ecs.Singleton[FireClock]
	Sounds    ecs.Singleton[SoundQueue]

	Aliens ecs.Query[struct {
		Pos   *Position
		Alien *Alien
	}]
}

func (s *FiringSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Mode != ModePlaying {
		return
	}

	clock := s.FireClock.Get()
	clock.Cooldown -= frame.DeltaTime
	if clock.Cooldown > 0 {
		return
	}
	clock.Cooldown = session.Difficulty.FireCooldown()

	count := s.Aliens.Count()
	if count == 0 || rand.Float64() >= AlienFireChance {
		return
	}

	shooter := rand.IntN(count)
	i := 0
	for _, a := range s.Aliens.Iter() {
		if i == shooter {
			spawnAlienBullet(frame.Commands, *a.Pos)
			s.Sounds.Get().Push(SoundAlienShoot)
			break
		}
		i++
	}
}
