package game

import (
	"log/slog"

	"github.com/plus3/invaders/ecs"
)

// LifecycleSystem culls off-screen bullets and decides how a run ends: out
// of lives or an alien reaching the ground means game over, a cleared final
// wave means victory, a cleared earlier wave starts the next level.
type LifecycleSystem struct {
	Session   ecs.Singleton[Session]
	Rules     ecs.Singleton[Rules]
	Formation ecs.Singleton[Formation]

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
	Players ecs.Query[struct {
		Pos *Position
		Tag *Player
	}]

	log      *slog.Logger
	recorder ScoreRecorder
}

// NewLifecycleSystem creates the lifecycle system. Both arguments may be nil.
func NewLifecycleSystem(log *slog.Logger, recorder ScoreRecorder) *LifecycleSystem {
	if log == nil {
		log = slog.Default()
	}
	return &LifecycleSystem{log: log, recorder: recorder}
}

func (s *LifecycleSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Mode != ModePlaying {
		return
	}

	// The run's entities spawn at the end of the starting tick; until the
	// cannon exists there is nothing to judge.
	if s.Players.Count() == 0 {
		return
	}

	for id, b := range s.Bullets.Iter() {
		if b.Pos.Y+b.Size.H < 0 || b.Pos.Y > WorldH {
			frame.Commands.Delete(id)
		}
	}

	if session.Lives <= 0 {
		s.endRun(session, ModeGameOver)
		return
	}

	for _, a := range s.Aliens.Iter() {
		if a.Pos.Y+a.Size.H >= WorldH-GroundH {
			s.endRun(session, ModeGameOver)
			return
		}
	}

	if s.Aliens.Count() == 0 {
		rules := s.Rules.Get()
		if session.Level >= rules.FinalLevel {
			s.endRun(session, ModeVictory)
			return
		}
		s.nextWave(frame, session)
	}
}

// nextWave advances the level, speeds the formation up, and respawns the
// grid. Leftover bullets from the cleared wave are swept away.
func (s *LifecycleSystem) nextWave(frame *ecs.UpdateFrame, session *Session) {
	session.Level++

	formation := s.Formation.Get()
	formation.Direction = 1
	formation.Speed = AlienBaseSpeed + AlienSpeedPerWave*float64(session.Level-1)
	formation.AnimTimer = 0
	formation.Frame = 0

	for id := range s.Bullets.Iter() {
		frame.Commands.Delete(id)
	}

	storage := frame.Storage
	frame.Commands.Defer(func() {
		SpawnFormation(storage)
	})

	s.log.Debug("wave cleared", "level", session.Level, "speed", formation.Speed)
}

func (s *LifecycleSystem) endRun(session *Session, mode Mode) {
	session.Mode = mode
	if s.recorder != nil && session.Score > 0 && s.recorder.IsHighScore(session.Score) {
		session.EnteringInitials = true
		session.Initials = ""
	}
	s.log.Info("run ended", "mode", mode, "score", session.Score, "level", session.Level)
}
