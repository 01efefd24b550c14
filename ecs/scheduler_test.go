package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/invaders/ecs"
)

type movementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *movementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type healthSystem struct {
	Entities ecs.Query[struct {
		*Health
	}]
	ExecuteCount int
	TotalHealth  float64
}

func (s *healthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type settingsSystem struct {
	Settings ecs.Singleton[Health]
	Observed int
}

func (s *settingsSystem) Execute(frame *ecs.UpdateFrame) {
	s.Observed = s.Settings.Get().Current
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution order and query initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &movementSystem{}
		health := &healthSystem{}

		scheduler.Register(movement)
		scheduler.Register(health)

		storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
		storage.Spawn(Health{Current: 100, Max: 100})

		scheduler.Once(1.0)

		if movement.ExecuteCount != 1 {
			t.Errorf("expected movementSystem to execute once, got %d", movement.ExecuteCount)
		}
		if health.ExecuteCount != 1 {
			t.Errorf("expected healthSystem to execute once, got %d", health.ExecuteCount)
		}

		scheduler.Once(1.0)

		if movement.ExecuteCount != 2 {
			t.Errorf("expected movementSystem to execute twice, got %d", movement.ExecuteCount)
		}
		if health.ExecuteCount != 2 {
			t.Errorf("expected healthSystem to execute twice, got %d", health.ExecuteCount)
		}
	})

	t.Run("movement integrates over ticks", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&movementSystem{})

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 3, DY: -1})

		for i := 0; i < 4; i++ {
			scheduler.Once(0.5)
		}

		pos := ecs.ReadComponent[Position](storage, id)
		if pos.X != 6 || pos.Y != -2 {
			t.Errorf("expected position (6,-2), got (%v,%v)", pos.X, pos.Y)
		}
	})

	t.Run("queries refresh before each system", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		spawner := &funcSystem{fn: func(frame *ecs.UpdateFrame) {
			frame.Commands.Spawn(Health{Current: 10, Max: 10})
		}}
		health := &healthSystem{}
		scheduler.Register(spawner)
		scheduler.Register(health)

		scheduler.Once(1.0)
		// First tick: the spawn is still queued while healthSystem runs.
		if health.TotalHealth != 0 {
			t.Errorf("expected TotalHealth=0 on first tick, got %f", health.TotalHealth)
		}

		scheduler.Once(1.0)
		if health.TotalHealth != 10 {
			t.Errorf("expected TotalHealth=10 on second tick, got %f", health.TotalHealth)
		}
	})

	t.Run("singleton fields initialize on register", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		storage.AddSingleton(Health{Current: 42, Max: 100})

		settings := &settingsSystem{}
		scheduler.Register(settings)

		scheduler.Once(1.0)

		if settings.Observed != 42 {
			t.Errorf("expected singleton value 42, got %d", settings.Observed)
		}
	})

	t.Run("stats accumulate", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&movementSystem{})
		scheduler.Register(&healthSystem{})

		scheduler.Once(1.0)
		scheduler.Once(1.0)
		scheduler.Once(1.0)

		stats := scheduler.GetStats()
		if stats.SystemCount != 2 {
			t.Errorf("expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.TotalExecutions != 6 {
			t.Errorf("expected 6 total executions, got %d", stats.TotalExecutions)
		}
		for _, sys := range stats.Systems {
			if sys.ExecutionCount != 3 {
				t.Errorf("expected system %s to execute 3 times, got %d", sys.Name, sys.ExecutionCount)
			}
			if sys.MaxDuration < sys.MinDuration {
				t.Errorf("system %s has max < min duration", sys.Name)
			}
		}
	})
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	movement := &movementSystem{}
	scheduler.Register(movement)
	storage.Spawn(Position{}, Velocity{DX: 1})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}

	if movement.ExecuteCount == 0 {
		t.Error("expected at least one execution before cancellation")
	}
}
