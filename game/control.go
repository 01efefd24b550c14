package game

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/plus3/invaders/ecs"
)

// ScoreRecorder persists finished runs. The entry point wires the high-score
// table in; tests and headless runs may leave it nil.
type ScoreRecorder interface {
	IsHighScore(score int) bool
	Record(initials string, score int) error
}

// ControlSystem owns the session state machine. It consumes the Intent
// singleton, moves the state machine between menu, playing, paused and the
// two terminal states, steers the player cannon, and fires its bullets.
type ControlSystem struct {
	Session      ecs.Singleton[Session]
	Intent       ecs.Singleton[Intent]
	Rules        ecs.Singleton[Rules]
	Formation    ecs.Singleton[Formation]
	FireClock    ecs.Singleton[FireClock]
	MysteryClock ecs.Singleton[MysteryClock]
	Sounds       ecs.Singleton[SoundQueue]

	Players ecs.Query[struct {
		ecs.EntityId
		Pos *Position
		Vel *Velocity
		Tag *Player
	}]
	Entities ecs.Query[struct {
		ecs.EntityId
		Pos *Position
	}]

	log      *slog.Logger
	recorder ScoreRecorder
}

// NewControlSystem creates the control system. Both arguments may be nil.
func NewControlSystem(log *slog.Logger, recorder ScoreRecorder) *ControlSystem {
	if log == nil {
		log = slog.Default()
	}
	return &ControlSystem{log: log, recorder: recorder}
}

func (s *ControlSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	intent := s.Intent.Get()

	if intent.Quit && !session.EnteringInitials {
		session.Quit = true
		return
	}

	switch session.Mode {
	case ModeMenu:
		if intent.PickedDifficulty {
			s.startRun(frame, intent.Difficulty)
		}
	case ModePlaying:
		s.updatePlaying(frame)
	case ModePaused:
		if intent.Pause {
			s.setMode(session, ModePlaying)
		}
		if intent.Restart {
			s.toMenu(frame)
		}
	case ModeGameOver, ModeVictory:
		if session.EnteringInitials {
			s.updateInitials(session, intent)
		} else if intent.Restart {
			s.toMenu(frame)
		}
	}
}

func (s *ControlSystem) updatePlaying(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	intent := s.Intent.Get()

	if intent.Pause {
		s.setMode(session, ModePaused)
		return
	}
	if intent.Restart {
		s.toMenu(frame)
		return
	}

	if intent.GrantLife {
		session.Lives++
	}
	if intent.GrantScore {
		session.Score += 100
	}
	if intent.SummonMystery {
		s.MysteryClock.Get().Cooldown = 0
	}

	for _, player := range s.Players.Iter() {
		player.Vel.DX = 0
		if intent.MoveLeft {
			player.Vel.DX -= PlayerSpeed
		}
		if intent.MoveRight {
			player.Vel.DX += PlayerSpeed
		}

		if intent.Fire {
			spawnPlayerBullet(frame.Commands, *player.Pos)
			session.ShotsFired++
			s.Sounds.Get().Push(SoundShoot)
		}
	}
}

// updateInitials routes typed characters into the three-letter tag and
// records the score on submit.
func (s *ControlSystem) updateInitials(session *Session, intent *Intent) {
	for _, r := range intent.Typed {
		if len(session.Initials) >= 3 {
			break
		}
		r = []rune(strings.ToUpper(string(r)))[0]
		if r >= 'A' && r <= 'Z' {
			session.Initials += string(r)
		}
	}
	if intent.Backspace && len(session.Initials) > 0 {
		session.Initials = session.Initials[:len(session.Initials)-1]
	}
	if intent.Submit && len(session.Initials) > 0 {
		if s.recorder != nil {
			if err := s.recorder.Record(session.Initials, session.Score); err != nil {
				s.log.Error("recording high score", "error", err)
			}
		}
		session.EnteringInitials = false
	}
}

func (s *ControlSystem) startRun(frame *ecs.UpdateFrame, difficulty Difficulty) {
	session := s.Session.Get()
	rules := s.Rules.Get()

	s.clearWorld(frame)

	session.Difficulty = difficulty
	session.Score = 0
	session.Lives = rules.StartLives
	session.Level = 1
	session.ShotsFired = 0
	session.Initials = ""
	session.EnteringInitials = false
	s.setMode(session, ModePlaying)

	formation := s.Formation.Get()
	formation.Direction = 1
	formation.Speed = AlienBaseSpeed
	formation.AnimTimer = 0
	formation.Frame = 0

	s.FireClock.Get().Cooldown = difficulty.FireCooldown()
	s.MysteryClock.Get().Cooldown = MysteryCooldownMin + rand.Float64()*(MysteryCooldownMax-MysteryCooldownMin)

	// Deletes flush before deferred functions, so the fresh wave never
	// collides with slots from the previous run.
	storage := frame.Storage
	frame.Commands.Defer(func() {
		SpawnPlayer(storage)
		SpawnFormation(storage)
	})

	s.log.Debug("run started", "difficulty", difficulty)
}

func (s *ControlSystem) toMenu(frame *ecs.UpdateFrame) {
	s.clearWorld(frame)
	session := s.Session.Get()
	session.EnteringInitials = false
	s.setMode(session, ModeMenu)
}

func (s *ControlSystem) clearWorld(frame *ecs.UpdateFrame) {
	for id := range s.Entities.Iter() {
		frame.Commands.Delete(id)
	}
}

func (s *ControlSystem) setMode(session *Session, mode Mode) {
	if session.Mode == mode {
		return
	}
	s.log.Debug("mode change", "from", session.Mode, "to", mode)
	session.Mode = mode
}
