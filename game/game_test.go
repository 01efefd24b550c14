package game_test

import (
	"sort"
	"testing"

	"github.com/plus3/invaders/ecs"
	"github.com/plus3/invaders/game"
)

// world wires the full simulation without keyboard, audio, or rendering.
// Tests drive it by writing the Intent singleton directly.
type world struct {
	t *testing.T

	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	session      *game.Session
	intent       *game.Intent
	rules        *game.Rules
	formation    *game.Formation
	fireClock    *game.FireClock
	mysteryClock *game.MysteryClock
	sounds       *game.SoundQueue
}

func newWorld(t *testing.T) *world {
	return newWorldWithRecorder(t, nil)
}

func newWorldWithRecorder(t *testing.T, recorder game.ScoreRecorder) *world {
	t.Helper()

	registry := ecs.NewComponentRegistry()
	game.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[game.Session](storage)
	ecs.NewSingleton[game.Intent](storage)
	ecs.NewSingleton[game.Rules](storage, game.DefaultRules())
	ecs.NewSingleton[game.Formation](storage)
	ecs.NewSingleton[game.FireClock](storage)
	ecs.NewSingleton[game.MysteryClock](storage)
	ecs.NewSingleton[game.SoundQueue](storage)
	ecs.NewSingleton[game.Performance](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(game.NewControlSystem(nil, recorder))
	scheduler.Register(&game.MovementSystem{})
	scheduler.Register(&game.FormationSystem{})
	scheduler.Register(&game.FiringSystem{})
	scheduler.Register(&game.MysterySystem{})
	scheduler.Register(&game.CollisionSystem{})
	scheduler.Register(game.NewLifecycleSystem(nil, recorder))
	scheduler.Register(&game.MetricsSystem{})

	w := &world{t: t, storage: storage, scheduler: scheduler}
	for _, ok := range []bool{
		storage.ReadSingleton(&w.session),
		storage.ReadSingleton(&w.intent),
		storage.ReadSingleton(&w.rules),
		storage.ReadSingleton(&w.formation),
		storage.ReadSingleton(&w.fireClock),
		storage.ReadSingleton(&w.mysteryClock),
		storage.ReadSingleton(&w.sounds),
	} {
		if !ok {
			t.Fatal("singleton missing from storage")
		}
	}
	return w
}

// tick runs one frame and then clears the intent, mirroring how the keyboard
// system rewrites it every tick.
func (w *world) tick(dt float64) {
	w.t.Helper()
	w.scheduler.Once(dt)
	w.intent.Reset()
}

// start picks a difficulty from the menu and silences the random clocks so
// tests stay deterministic.
func (w *world) start(d game.Difficulty) {
	w.t.Helper()
	w.intent.PickedDifficulty = true
	w.intent.Difficulty = d
	w.tick(0)

	if w.session.Mode != game.ModePlaying {
		w.t.Fatalf("expected ModePlaying after difficulty pick, got %s", w.session.Mode)
	}
	w.quietClocks()
}

// quietClocks pushes the random alien-fire and mystery-ship timers far into
// the future.
func (w *world) quietClocks() {
	w.fireClock.Cooldown = 1e9
	w.mysteryClock.Cooldown = 1e9
}

// Entity counters built on plain views; usable outside scheduler execution.

func (w *world) alienCount() int {
	n := 0
	for range ecs.NewView[struct{ A *game.Alien }](w.storage).Values() {
		n++
	}
	return n
}

func (w *world) bulletCount(owner game.Owner) int {
	n := 0
	for b := range ecs.NewView[struct{ B *game.Bullet }](w.storage).Values() {
		if b.B.Owner == owner {
			n++
		}
	}
	return n
}

func (w *world) mysteryCount() int {
	n := 0
	for range ecs.NewView[struct{ M *game.Mystery }](w.storage).Values() {
		n++
	}
	return n
}

func (w *world) alienXs() []float64 {
	var xs []float64
	for a := range ecs.NewView[struct {
		Pos *game.Position
		A   *game.Alien
	}](w.storage).Values() {
		xs = append(xs, a.Pos.X)
	}
	sort.Float64s(xs)
	return xs
}

func (w *world) playerCount() int {
	n := 0
	for range ecs.NewView[struct{ P *game.Player }](w.storage).Values() {
		n++
	}
	return n
}

func (w *world) alienYs() []float64 {
	var ys []float64
	for a := range ecs.NewView[struct {
		Pos *game.Position
		A   *game.Alien
	}](w.storage).Values() {
		ys = append(ys, a.Pos.Y)
	}
	sort.Float64s(ys)
	return ys
}

func (w *world) playerX() float64 {
	for p := range ecs.NewView[struct {
		Pos *game.Position
		P   *game.Player
	}](w.storage).Values() {
		return p.Pos.X
	}
	w.t.Fatal("no player entity")
	return 0
}

func (w *world) bulletXs() []float64 {
	var xs []float64
	for b := range ecs.NewView[struct {
		Pos *game.Position
		B   *game.Bullet
	}](w.storage).Values() {
		xs = append(xs, b.Pos.X)
	}
	sort.Float64s(xs)
	return xs
}

// fakeRecorder records calls without touching the filesystem.
type fakeRecorder struct {
	high     bool
	initials string
	score    int
	records  int
}

func (f *fakeRecorder) IsHighScore(score int) bool { return f.high }

func (f *fakeRecorder) Record(initials string, score int) error {
	f.initials = initials
	f.score = score
	f.records++
	return nil
}
