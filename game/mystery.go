package game

import (
	"math/rand/v2"

	"github.com/plus3/invaders/ecs"
)

// MysterySystem spawns the bonus ship on a randomized cooldown and despawns
// it once it has crossed the screen. At most one ship is airborne at a time.
type MysterySystem struct {
	Session ecs.Singleton[Session]
	Clock   ecs.Singleton[MysteryClock]

	Ships ecs.Query[struct {
		ecs.EntityId
		Pos *Position
		Vel *Velocity
		Tag *Mystery
	}]
}

func (s *MysterySystem) Execute(frame *ecs.UpdateFrame) {
	if s.Session.Get().Mode != ModePlaying {
		return
	}

	if s.Ships.Count() > 0 {
		for id, ship := range s.Ships.Iter() {
			if ship.Vel.DX > 0 && ship.Pos.X > WorldW {
				frame.Commands.Delete(id)
			}
			if ship.Vel.DX < 0 && ship.Pos.X < -MysteryW {
				frame.Commands.Delete(id)
			}
		}
		return
	}

	clock := s.Clock.Get()
	clock.Cooldown -= frame.DeltaTime
	if clock.Cooldown > 0 {
		return
	}

	spawnMystery(frame.Commands, rand.IntN(2) == 0)
	clock.Cooldown = MysteryCooldownMin + rand.Float64()*(MysteryCooldownMax-MysteryCooldownMin)
}
