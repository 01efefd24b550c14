package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/invaders/assets"
	"github.com/plus3/invaders/ecs"
)

var alienSprites = map[AlienKind]assets.SpriteID{
	Squid:   assets.SpriteSquid,
	Crab:    assets.SpriteCrab,
	Octopus: assets.SpriteOctopus,
}

// Renderer draws the world and the HUD. It runs from ebiten's Draw callback
// rather than the scheduler, so it reads storage through plain views instead
// of cached queries.
type Renderer struct {
	atlas  *assets.Atlas
	lister ScoreLister

	session   *Session
	formation *Formation

	players *ecs.View[struct {
		Pos  *Position
		Size *Size
		Tag  *Player
	}]
	aliens *ecs.View[struct {
		Pos   *Position
		Size  *Size
		Alien *Alien
	}]
	bullets *ecs.View[struct {
		Pos    *Position
		Size   *Size
		Bullet *Bullet
	}]
	ships *ecs.View[struct {
		Pos  *Position
		Size *Size
		Tag  *Mystery
	}]
}

// NewRenderer creates the renderer. The storage must already hold the Session
// and Formation singletons. lister may be nil.
func NewRenderer(storage *ecs.Storage, atlas *assets.Atlas, lister ScoreLister) *Renderer {
	r := &Renderer{atlas: atlas, lister: lister}

	if !storage.ReadSingleton(&r.session) || !storage.ReadSingleton(&r.formation) {
		panic("renderer requires Session and Formation singletons")
	}

	r.players = ecs.NewView[struct {
		Pos  *Position
		Size *Size
		Tag  *Player
	}](storage)
	r.aliens = ecs.NewView[struct {
		Pos   *Position
		Size  *Size
		Alien *Alien
	}](storage)
	r.bullets = ecs.NewView[struct {
		Pos    *Position
		Size   *Size
		Bullet *Bullet
	}](storage)
	r.ships = ecs.NewView[struct {
		Pos  *Position
		Size *Size
		Tag  *Mystery
	}](storage)

	return r
}

// Draw renders one frame for the current session mode.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{5, 5, 20, 255})

	switch r.session.Mode {
	case ModeMenu:
		r.drawMenu(screen)
	case ModePlaying, ModePaused:
		r.drawWorld(screen)
		r.drawHUD(screen)
		if r.session.Mode == ModePaused {
			r.drawPaused(screen)
		}
	case ModeGameOver:
		r.drawWorld(screen)
		r.drawEndScreen(screen, "GAME OVER")
	case ModeVictory:
		r.drawWorld(screen)
		r.drawEndScreen(screen, "VICTORY!")
	}
}

func (r *Renderer) drawWorld(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(WorldH-GroundH), float32(WorldW), float32(GroundH),
		color.RGBA{20, 80, 20, 255}, false)

	for p := range r.players.Values() {
		r.drawSprite(screen, r.atlas.Sprite(assets.SpritePlayer), p.Pos, p.Size, color.RGBA{0, 255, 0, 255})
	}

	for a := range r.aliens.Values() {
		img := r.atlas.Alien(alienSprites[a.Alien.Kind], a.Alien.Color, r.formation.Frame)
		r.drawSprite(screen, img, a.Pos, a.Size, color.RGBA{255, 0, 0, 255})
	}

	for b := range r.bullets.Values() {
		id := assets.SpriteBullet
		tint := color.RGBA{255, 255, 0, 255}
		if b.Bullet.Owner == OwnerAlien {
			id = assets.SpriteAlienBullet
			tint = color.RGBA{255, 0, 255, 255}
		}
		r.drawSprite(screen, r.atlas.Sprite(id), b.Pos, b.Size, tint)
	}

	for m := range r.ships.Values() {
		r.drawSprite(screen, r.atlas.Sprite(assets.SpriteMystery), m.Pos, m.Size, color.RGBA{200, 160, 255, 255})
	}
}

// drawSprite scales the image into the entity's box; a missing image degrades
// to a solid rectangle.
func (r *Renderer) drawSprite(screen, img *ebiten.Image, pos *Position, size *Size, fallback color.RGBA) {
	if img == nil {
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
			float32(size.W), float32(size.H), fallback, false)
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.W/float64(bounds.Dx()), size.H/float64(bounds.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, op)
}
