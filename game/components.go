package game

import "github.com/plus3/invaders/ecs"

// Position is the top-left corner of an entity in world pixels.
type Position struct {
	X, Y float64
}

// Velocity is in world pixels per second.
type Velocity struct {
	DX, DY float64
}

// Size is the axis-aligned bounding box used for collision and rendering.
type Size struct {
	W, H float64
}

// Player marks the player cannon. There is at most one per world.
type Player struct{}

// Alien is one member of the formation. Row and Col are grid coordinates;
// Color picks one of the palette tints.
type Alien struct {
	Kind  AlienKind
	Row   int
	Col   int
	Color int
}

// Bullet is a projectile fired by either side.
type Bullet struct {
	Owner Owner
}

// Mystery marks the bonus ship crossing the top of the screen.
type Mystery struct{}

// RegisterComponents registers every component type with the registry. Call
// this before creating storage.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Size](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Alien](registry)
	ecs.RegisterComponent[Bullet](registry)
	ecs.RegisterComponent[Mystery](registry)
}
