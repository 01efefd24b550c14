package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/invaders/ecs"
)

func TestQueryCaching(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})

	query := ecs.NewQuery[struct{ Pos *Position }](storage)
	query.Execute()

	assert.Equal(t, 2, query.Count())

	// Spawns after Execute are invisible until the next Execute.
	storage.Spawn(Position{X: 3})
	assert.Equal(t, 2, query.Count())

	query.Execute()
	assert.Equal(t, 3, query.Count())
}

func TestQueryPanicsBeforeExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	query := ecs.NewQuery[struct{ Pos *Position }](storage)

	assert.Panics(t, func() { query.Count() })
	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Values() })
}

func TestQueryIterYieldsIds(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 42})

	query := ecs.NewQuery[struct{ Pos *Position }](storage)
	query.Execute()

	for gotId, item := range query.Iter() {
		assert.Equal(t, id, gotId)
		assert.Equal(t, float32(42), item.Pos.X)
	}
}
