package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/invaders/ecs"
)

// KeyboardSystem polls the keyboard and rewrites the Intent singleton each
// tick. It is the only system touching ebiten input, which keeps the rest of
// the simulation headless.
type KeyboardSystem struct {
	Session ecs.Singleton[Session]
	Intent  ecs.Singleton[Intent]

	// Capture reports whether something else (the debug overlay) wants the
	// keyboard this tick. May be nil.
	Capture func() bool
}

func (s *KeyboardSystem) Execute(frame *ecs.UpdateFrame) {
	intent := s.Intent.Get()
	intent.Reset()

	if s.Capture != nil && s.Capture() {
		return
	}

	readKeys(intent, s.Session.Get().EnteringInitials,
		ebiten.IsKeyPressed, inpututil.IsKeyJustPressed, ebiten.AppendInputChars)
}

// readKeys does the actual mapping; input sources are injected so the mapping
// stays testable without a window.
func readKeys(
	intent *Intent,
	enteringInitials bool,
	held func(ebiten.Key) bool,
	pressed func(ebiten.Key) bool,
	typed func([]rune) []rune,
) {
	// While entering initials, letters belong to the name tag and most
	// bindings would clash with it.
	if enteringInitials {
		intent.Typed = typed(intent.Typed)
		intent.Backspace = pressed(ebiten.KeyBackspace)
		intent.Submit = pressed(ebiten.KeyEnter)
		return
	}

	intent.MoveLeft = held(ebiten.KeyArrowLeft) || held(ebiten.KeyA)
	intent.MoveRight = held(ebiten.KeyArrowRight) || held(ebiten.KeyD)

	intent.Fire = pressed(ebiten.KeySpace)
	intent.Pause = pressed(ebiten.KeyP)
	intent.Restart = pressed(ebiten.KeyR)
	intent.Quit = pressed(ebiten.KeyQ)

	switch {
	case pressed(ebiten.KeyE):
		intent.PickedDifficulty = true
		intent.Difficulty = Easy
	case pressed(ebiten.KeyM):
		intent.PickedDifficulty = true
		intent.Difficulty = Medium
	case pressed(ebiten.KeyH):
		intent.PickedDifficulty = true
		intent.Difficulty = Hard
	}

	intent.GrantLife = pressed(ebiten.KeyL)
	intent.GrantScore = pressed(ebiten.KeyS)
	intent.SummonMystery = pressed(ebiten.KeyM)
}
