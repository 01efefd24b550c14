package game

import (
	"math/rand/v2"

	"github.com/plus3/invaders/ecs"
)

// alienRowKinds is the classic row layout, top to bottom.
var alienRowKinds = [AlienRows]AlienKind{Squid, Crab, Crab, Octopus, Octopus}

// SpawnPlayer creates the player cannon centered above the ground line.
func SpawnPlayer(storage *ecs.Storage) ecs.EntityId {
	return storage.Spawn(
		Player{},
		Position{X: WorldW/2 - PlayerW/2, Y: WorldH - GroundH - PlayerH},
		Velocity{},
		Size{W: PlayerW, H: PlayerH},
	)
}

// SpawnFormation creates the full alien grid. Colors are picked per alien so
// each wave looks different.
func SpawnFormation(storage *ecs.Storage) {
	for row := 0; row < AlienRows; row++ {
		for col := 0; col < AlienCols; col++ {
			storage.Spawn(
				Alien{
					Kind:  alienRowKinds[row],
					Row:   row,
					Col:   col,
					Color: rand.IntN(AlienColorCount),
				},
				Position{
					X: AlienOriginX + float64(col)*AlienPitchX,
					Y: AlienOriginY + float64(row)*AlienPitchY,
				},
				Size{W: AlienW, H: AlienH},
			)
		}
	}
}

// spawnPlayerBullet queues a bullet rising from the cannon muzzle.
func spawnPlayerBullet(commands *ecs.Commands, playerPos Position) {
	commands.Spawn(
		Bullet{Owner: OwnerPlayer},
		Position{X: playerPos.X + PlayerW/2 - BulletW/2, Y: playerPos.Y - BulletH},
		Velocity{DY: -PlayerBulletSpeed},
		Size{W: BulletW, H: BulletH},
	)
}

// spawnAlienBullet queues a bullet falling from under the shooter.
func spawnAlienBullet(commands *ecs.Commands, alienPos Position) {
	commands.Spawn(
		Bullet{Owner: OwnerAlien},
		Position{X: alienPos.X + AlienW/2 - BulletW/2, Y: alienPos.Y + AlienH},
		Velocity{DY: AlienBulletSpeed},
		Size{W: BulletW, H: BulletH},
	)
}

// spawnMystery queues the bonus ship entering from a random side.
func spawnMystery(commands *ecs.Commands, fromLeft bool) {
	x, dx := -MysteryW, MysterySpeed
	if !fromLeft {
		x, dx = WorldW, -MysterySpeed
	}
	commands.Spawn(
		Mystery{},
		Position{X: x, Y: MysteryY},
		Velocity{DX: dx},
		Size{W: MysteryW, H: MysteryH},
	)
}
