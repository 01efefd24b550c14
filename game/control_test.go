package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/invaders/game"
)

func TestDifficultyPickStartsRun(t *testing.T) {
	w := newWorld(t)

	w.start(game.Medium)

	assert.Equal(t, game.Medium, w.session.Difficulty)
	assert.Equal(t, 3, w.session.Lives)
	assert.Equal(t, 1, w.session.Level)
	assert.Equal(t, 0, w.session.Score)
	assert.Equal(t, 1, w.playerCount())
	assert.Equal(t, game.AlienRows*game.AlienCols, w.alienCount())
}

func TestMenuIgnoresGameplayKeys(t *testing.T) {
	w := newWorld(t)

	w.intent.Fire = true
	w.intent.Pause = true
	w.tick(0.1)

	assert.Equal(t, game.ModeMenu, w.session.Mode)
	assert.Equal(t, 0, w.bulletCount(game.OwnerPlayer))
}

func TestPauseFreezesSimulation(t *testing.T) {
	w := newWorld(t)
	w.start(game.Easy)

	w.intent.Pause = true
	w.tick(0.1)
	assert.Equal(t, game.ModePaused, w.session.Mode)

	before := w.alienXs()

	w.tick(0.5)
	assert.Equal(t, before, w.alienXs())

	w.intent.Pause = true
	w.tick(0)
	assert.Equal(t, game.ModePlaying, w.session.Mode)
}

func TestFireSpawnsBulletAndCountsShot(t *testing.T) {
	w := newWorld(t)
	w.start(game.Easy)

	w.intent.Fire = true
	w.tick(0)

	assert.Equal(t, 1, w.bulletCount(game.OwnerPlayer))
	assert.Equal(t, 1, w.session.ShotsFired)
	assert.Contains(t, w.sounds.Pending, game.SoundShoot)
}

func TestRestartClearsWorld(t *testing.T) {
	w := newWorld(t)
	w.start(game.Hard)

	w.session.Score = 1200

	w.intent.Restart = true
	w.tick(0)

	assert.Equal(t, game.ModeMenu, w.session.Mode)
	assert.Equal(t, 0, w.playerCount())
	assert.Equal(t, 0, w.alienCount())

	// A fresh run starts from scratch.
	w.start(game.Easy)
	assert.Equal(t, 0, w.session.Score)
	assert.Equal(t, 3, w.session.Lives)
	assert.Equal(t, game.AlienRows*game.AlienCols, w.alienCount())
}

func TestQuitLatches(t *testing.T) {
	w := newWorld(t)

	w.intent.Quit = true
	w.tick(0)

	assert.True(t, w.session.Quit)
}

func TestCheats(t *testing.T) {
	w := newWorld(t)
	w.start(game.Easy)

	w.intent.GrantLife = true
	w.tick(0)
	assert.Equal(t, 4, w.session.Lives)

	w.intent.GrantScore = true
	w.tick(0)
	assert.Equal(t, 100, w.session.Score)

	w.intent.SummonMystery = true
	w.tick(0)
	assert.Equal(t, float64(0), w.mysteryClock.Cooldown)
}

func TestInitialsEntry(t *testing.T) {
	recorder := &fakeRecorder{high: true}
	w := newWorldWithRecorder(t, recorder)
	w.start(game.Easy)

	w.session.Score = 777
	w.session.Lives = 0
	w.tick(0)

	assert.Equal(t, game.ModeGameOver, w.session.Mode)
	assert.True(t, w.session.EnteringInitials)

	w.intent.Typed = []rune("abc")
	w.tick(0)
	assert.Equal(t, "ABC", w.session.Initials)

	w.intent.Backspace = true
	w.tick(0)
	assert.Equal(t, "AB", w.session.Initials)

	w.intent.Typed = []rune("7z") // digits are dropped
	w.tick(0)
	assert.Equal(t, "ABZ", w.session.Initials)

	w.intent.Submit = true
	w.tick(0)

	assert.False(t, w.session.EnteringInitials)
	assert.Equal(t, 1, recorder.records)
	assert.Equal(t, "ABZ", recorder.initials)
	assert.Equal(t, 777, recorder.score)
}

func TestRestartBlockedDuringInitialsEntry(t *testing.T) {
	recorder := &fakeRecorder{high: true}
	w := newWorldWithRecorder(t, recorder)
	w.start(game.Easy)

	w.session.Lives = 0
	w.session.Score = 10
	w.tick(0)
	assert.True(t, w.session.EnteringInitials)

	w.intent.Restart = true
	w.tick(0)
	assert.Equal(t, game.ModeGameOver, w.session.Mode)
}
