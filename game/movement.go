package game

import "github.com/plus3/invaders/ecs"

// MovementSystem integrates velocity into position. The player cannon is the
// only entity clamped to the world; bullets and the mystery ship are culled
// elsewhere once they leave it.
type MovementSystem struct {
	Session ecs.Singleton[Session]

	Movers ecs.Query[struct {
		Pos    *Position
		Vel    *Velocity
		Player *Player `ecs:"optional"`
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Session.Get().Mode != ModePlaying {
		return
	}

	for _, m := range s.Movers.Iter() {
		m.Pos.X += m.Vel.DX * frame.DeltaTime
		m.Pos.Y += m.Vel.DY * frame.DeltaTime

		if m.Player != nil {
			if m.Pos.X < 0 {
				m.Pos.X = 0
			}
			if m.Pos.X > WorldW-PlayerW {
				m.Pos.X = WorldW - PlayerW
			}
		}
	}
}
