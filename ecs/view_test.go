package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/invaders/ecs"
)

func TestViewIteration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 10})
	storage.Spawn(Position{X: 2}, Velocity{DX: 20})
	storage.Spawn(Position{X: 3}) // no velocity, should not match

	view := ecs.NewView[struct {
		Pos *Position
		Vel *Velocity
	}](storage)

	seen := map[float32]float32{}
	for item := range view.Values() {
		seen[item.Pos.X] = item.Vel.DX
	}

	assert.Equal(t, map[float32]float32{1: 10, 2: 20}, seen)
}

func TestViewEmbeddedPointerFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 5}, Velocity{DX: 7})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	count := 0
	for item := range view.Values() {
		count++
		assert.Equal(t, float32(5), item.Position.X)
		assert.Equal(t, float32(7), item.Velocity.DX)
	}
	assert.Equal(t, 1, count)
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	spawned := storage.Spawn(Position{X: 9})

	view := ecs.NewView[struct {
		ecs.EntityId
		Pos *Position
	}](storage)

	for id, item := range view.Iter() {
		assert.Equal(t, spawned, id)
		assert.Equal(t, spawned, item.EntityId)
	}
}

func TestViewOptionalFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, PlayerController{})
	storage.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		Pos        *Position
		Controller *PlayerController `ecs:"optional"`
	}](storage)

	controlled := 0
	total := 0
	for item := range view.Values() {
		total++
		if item.Controller != nil {
			controlled++
		}
	}

	assert.Equal(t, 2, total)
	assert.Equal(t, 1, controlled)
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 4}, Velocity{DX: 6})
	other := storage.Spawn(Position{X: 8})

	view := ecs.NewView[struct {
		Pos *Position
		Vel *Velocity
	}](storage)

	item := view.Get(id)
	assert.NotNil(t, item)
	assert.Equal(t, float32(4), item.Pos.X)

	// Missing a required component
	assert.Nil(t, view.Get(other))

	storage.Delete(id)
	assert.Nil(t, view.Get(id))
}

func TestViewMutationThroughPointers(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Velocity{DX: 2})

	view := ecs.NewView[struct {
		Pos *Position
		Vel *Velocity
	}](storage)

	for item := range view.Values() {
		item.Pos.X += item.Vel.DX
	}

	pos := ecs.ReadComponent[Position](storage, id)
	assert.Equal(t, float32(3), pos.X)
}

func TestViewSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	view := ecs.NewView[struct {
		Pos *Position
		Vel *Velocity `ecs:"optional"`
	}](storage)

	id := view.Spawn(struct {
		Pos *Position
		Vel *Velocity `ecs:"optional"`
	}{Pos: &Position{X: 11}})

	assert.True(t, storage.Alive(id))
	assert.Equal(t, float32(11), ecs.ReadComponent[Position](storage, id).X)
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
}

func TestViewPanicsWithoutRequiredField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() {
		ecs.NewView[struct {
			Controller *PlayerController `ecs:"optional"`
		}](storage)
	})

	assert.Panics(t, func() {
		ecs.NewView[struct{ ecs.EntityId }](storage)
	})
}

func TestViewRejectsNonPointerFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() {
		ecs.NewView[struct{ Pos Position }](storage)
	})
}
