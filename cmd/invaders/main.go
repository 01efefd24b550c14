// Command invaders is a Space Invaders clone: a five-wave alien formation,
// a mystery bonus ship, three difficulties, and a persisted high-score table.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/invaders/assets"
	"github.com/plus3/invaders/debugui"
	debugui_ebiten "github.com/plus3/invaders/debugui/ebiten"
	"github.com/plus3/invaders/ecs"
	"github.com/plus3/invaders/game"
	"github.com/plus3/invaders/scores"
)

// Game drives the ECS scheduler from ebiten's loop and layers the ImGui
// overlay on top of the world renderer.
type Game struct {
	scheduler *ecs.Scheduler
	renderer  *game.Renderer
	backend   debugui_ebiten.ImguiBackend
	session   *game.Session

	debugVisible bool
}

func (g *Game) Update() error {
	g.backend.BeginFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugVisible = !g.debugVisible
	}

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	g.backend.EndFrame()

	if g.session.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.debugVisible {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return game.WorldW, game.WorldH
}

// scoreboard adapts the scores package to the renderer's listing interface.
type scoreboard struct {
	*scores.Table
}

func (s scoreboard) Top() []game.ScoreEntry {
	entries := s.Table.Top()
	out := make([]game.ScoreEntry, len(entries))
	for i, e := range entries {
		out[i] = game.ScoreEntry{Initials: e.Initials, Score: e.Score}
	}
	return out
}

func defaultScorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".invaders_scores.json"
	}
	return filepath.Join(home, ".invaders_scores.json")
}

func main() {
	var (
		assetDir  = flag.String("assets", "", "directory with PNG sprite overrides")
		scorePath = flag.String("scores", defaultScorePath(), "high-score file path")
		mute      = flag.Bool("mute", false, "disable sound")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Space Invaders", game.WorldW, game.WorldH)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	game.RegisterComponents(registry)
	ecs.RegisterComponent[debugui.ImguiItem](registry)

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[game.Session](storage)
	ecs.NewSingleton[game.Intent](storage)
	ecs.NewSingleton[game.Rules](storage, game.DefaultRules())
	ecs.NewSingleton[game.Formation](storage)
	ecs.NewSingleton[game.FireClock](storage)
	ecs.NewSingleton[game.MysteryClock](storage)
	ecs.NewSingleton[game.SoundQueue](storage)
	ecs.NewSingleton[game.Performance](storage)
	ecs.NewSingleton[debugui.ImguiInputState](storage)

	table := scores.Load(*scorePath, log)
	atlas := assets.NewAtlas(*assetDir, log)

	g := &Game{
		backend:  debugui_ebiten.ImguiBackend{EbitenBackend: backend},
		renderer: game.NewRenderer(storage, atlas, scoreboard{table}),
	}
	if !storage.ReadSingleton(&g.session) {
		panic("session singleton missing")
	}

	var inputState *debugui.ImguiInputState
	storage.ReadSingleton(&inputState)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&game.KeyboardSystem{
		Capture: func() bool { return g.debugVisible && inputState.WantCaptureKeyboard },
	})
	scheduler.Register(game.NewControlSystem(log, table))
	scheduler.Register(&game.MovementSystem{})
	scheduler.Register(&game.FormationSystem{})
	scheduler.Register(&game.FiringSystem{})
	scheduler.Register(&game.MysterySystem{})
	scheduler.Register(&game.CollisionSystem{})
	scheduler.Register(game.NewLifecycleSystem(log, table))
	if *mute {
		scheduler.Register(&game.DrainSoundsSystem{})
	} else {
		scheduler.Register(game.NewAudioSystem(audio.NewContext(assets.SampleRate)))
	}
	scheduler.Register(&game.MetricsSystem{})
	scheduler.Register(&debugui.ImguiSystem{
		Enabled: func() bool { return g.debugVisible },
	})
	g.scheduler = scheduler

	spawnDebugWindows(storage, scheduler)

	log.Info("starting", "scores", *scorePath, "mute", *mute)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
