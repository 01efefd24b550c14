package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invaders/debugui"
	"github.com/plus3/invaders/ecs"
	"github.com/plus3/invaders/game"
)

func spawnDebugWindows(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	spawnPerformanceWindow(storage, scheduler)
	spawnWorldWindow(storage)
	spawnCheatWindow(storage)
}

func spawnPerformanceWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var perf *game.Performance
			if !storage.ReadSingleton(&perf) {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 280), imgui.CondOnce)

			if imgui.BeginV("Performance", nil, 0) {
				avg := perf.Average()
				if avg > 0 {
					imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f TPS)", avg*1000, 1/avg))
				}
				imgui.Text(fmt.Sprintf("Entity Count: %d", perf.EntityCount))

				series := perf.Series()
				if len(series) > 0 {
					imgui.Separator()
					imgui.Text("Frame Time Graph")
					imgui.PlotLinesFloatPtr("##frametime", &series[0], int32(len(series)))
				}

				if imgui.TreeNodeStr("System Timings") {
					for _, sys := range scheduler.GetStats().Systems {
						imgui.Text(fmt.Sprintf("%-18s avg %6s last %6s",
							sys.Name, sys.AvgDuration, sys.LastDuration))
					}
					imgui.TreePop()
				}

				imgui.End()
			}
		},
	})
}

func spawnWorldWindow(storage *ecs.Storage) {
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var session *game.Session
			if !storage.ReadSingleton(&session) {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 240), imgui.CondOnce)

			if imgui.BeginV("World", nil, 0) {
				imgui.Text(fmt.Sprintf("Mode: %s", session.Mode))
				imgui.Text(fmt.Sprintf("Difficulty: %s", session.Difficulty))
				imgui.Text(fmt.Sprintf("Score: %d  Lives: %d  Level: %d",
					session.Score, session.Lives, session.Level))
				imgui.Text(fmt.Sprintf("Shots Fired: %d", session.ShotsFired))

				imgui.Separator()
				stats := storage.CollectStats()
				imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
				if imgui.TreeNodeStr("Stores") {
					for _, store := range stats.StoreBreakdown {
						imgui.Text(fmt.Sprintf("%-24s %d", store.TypeName, store.ComponentCount))
					}
					imgui.TreePop()
				}

				imgui.End()
			}
		},
	})
}

func spawnCheatWindow(storage *ecs.Storage) {
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var session *game.Session
			if !storage.ReadSingleton(&session) || session.Mode != game.ModePlaying {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 550), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 130), imgui.CondOnce)

			if imgui.BeginV("Cheats", nil, 0) {
				if imgui.Button("Extra Life (L)") {
					session.Lives++
				}
				if imgui.Button("+100 Score (S)") {
					session.Score += 100
				}
				if imgui.Button("Summon Mystery (M)") {
					var clock *game.MysteryClock
					if storage.ReadSingleton(&clock) {
						clock.Cooldown = 0
					}
				}

				imgui.End()
			}
		},
	})
}
