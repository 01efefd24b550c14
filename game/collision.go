package game

import "github.com/plus3/invaders/ecs"

// CollisionSystem resolves projectile hits. A bullet consumes at most one
// target per tick (first hit wins) and both parties are deleted through the
// command buffer, so every system this tick still sees a consistent world.
type CollisionSystem struct {
	Session ecs.Singleton[Session]
	Rules   ecs.Singleton[Rules]
	Sounds  ecs.Singleton[SoundQueue]

	Bullets ecs.Query[struct {
		ecs.EntityId
		Pos    *Position
		Size   *Size
		Bullet *Bullet
	}]
	Aliens ecs.Query[struct {
		ecs.EntityId
		Pos   *Position
		Size  *Size
		Alien *Alien
	}]
	Ships ecs.Query[struct {
		ecs.EntityId
		Pos  *Position
		Size *Size
		Tag  *Mystery
	}]
	Players ecs.Query[struct {
		ecs.EntityId
		Pos  *Position
		Size *Size
		Tag  *Player
	}]
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Mode != ModePlaying {
		return
	}

	rules := s.Rules.Get()
	multiplier := session.Difficulty.Multiplier()

	// Entities already consumed this tick; deletions only land at flush.
	struck := make(map[ecs.EntityId]bool)

	for bulletId, b := range s.Bullets.Iter() {
		if struck[bulletId] {
			continue
		}

		switch b.Bullet.Owner {
		case OwnerPlayer:
			hit := false
			for alienId, a := range s.Aliens.Iter() {
				if struck[alienId] {
					continue
				}
				if !overlapsPadded(b.Pos.X, b.Pos.Y, b.Size.W, b.Size.H,
					a.Pos.X, a.Pos.Y, a.Size.W, a.Size.H, AlienHitPadding) {
					continue
				}
				struck[bulletId] = true
				struck[alienId] = true
				frame.Commands.Delete(bulletId)
				frame.Commands.Delete(alienId)
				session.Score += rules.ScoreTable.Points(a.Alien.Kind) * multiplier
				s.Sounds.Get().Push(SoundHit)
				hit = true
				break
			}
			if hit {
				continue
			}

			for shipId, m := range s.Ships.Iter() {
				if struck[shipId] {
					continue
				}
				if !overlaps(b.Pos.X, b.Pos.Y, b.Size.W, b.Size.H,
					m.Pos.X, m.Pos.Y, m.Size.W, m.Size.H) {
					continue
				}
				struck[bulletId] = true
				struck[shipId] = true
				frame.Commands.Delete(bulletId)
				frame.Commands.Delete(shipId)
				session.Score += rules.MysteryBonus(session.ShotsFired) * multiplier
				s.Sounds.Get().Push(SoundHit)
				break
			}

		case OwnerAlien:
			for p := range s.Players.Values() {
				if !overlaps(b.Pos.X, b.Pos.Y, b.Size.W, b.Size.H,
					p.Pos.X, p.Pos.Y, p.Size.W, p.Size.H) {
					continue
				}
				struck[bulletId] = true
				frame.Commands.Delete(bulletId)
				session.Lives--
				s.Sounds.Get().Push(SoundHit)
				break
			}
		}
	}
}
