package game

import "github.com/plus3/invaders/ecs"

// FormationSystem marches the alien grid as a unit. When any member touches a
// world edge the whole formation reverses and descends one step. It also
// drives the shared two-frame walk animation.
type FormationSystem struct {
	Session   ecs.Singleton[Session]
	Formation ecs.Singleton[Formation]

	Aliens ecs.Query[struct {
		Pos   *Position
		Alien *Alien
	}]
}

func (s *FormationSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Session.Get().Mode != ModePlaying {
		return
	}

	formation := s.Formation.Get()
	dx := formation.Direction * formation.Speed * frame.DeltaTime

	hitEdge := false
	for _, a := range s.Aliens.Iter() {
		a.Pos.X += dx
		if a.Pos.X < 0 || a.Pos.X+AlienW > WorldW {
			hitEdge = true
		}
	}

	if hitEdge {
		formation.Direction = -formation.Direction
		for _, a := range s.Aliens.Iter() {
			// Push back inside so the same edge does not trigger again
			// next tick.
			if a.Pos.X < 0 {
				a.Pos.X = 0
			}
			if a.Pos.X+AlienW > WorldW {
				a.Pos.X = WorldW - AlienW
			}
			a.Pos.Y += AlienDescendStep
		}
	}

	formation.AnimTimer += frame.DeltaTime
	if formation.AnimTimer >= AlienAnimInterval {
		formation.AnimTimer -= AlienAnimInterval
		formation.Frame ^= 1
	}
}
