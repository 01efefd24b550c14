// Package assets builds the game's sprites and sound effects. Everything is
// generated procedurally from pixel masks and sine waves; PNG files in an
// optional asset directory override the generated sprites.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteID names the drawable sprites.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteBullet
	SpriteAlienBullet
	SpriteMystery
	SpriteSquid
	SpriteCrab
	SpriteOctopus
)

// AlienColorCount is the number of palette tints per alien kind.
const AlienColorCount = 6

// alienPalette is the classic six-color tint set.
var alienPalette = [AlienColorCount]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
}

var playerMask = []string{
	"0001000",
	"0011100",
	"0010100",
	"0110110",
	"1111111",
	"1110111",
	"1101011",
}

var bulletMask = []string{"1", "1", "1"}

var alienBulletMask = []string{"1", "0", "1", "0", "1"}

// Two masks per alien kind; the formation flips between them as it marches.
var alienMasks = map[SpriteID][2][]string{
	SpriteSquid: {
		{
			"00111100",
			"01111110",
			"11111111",
			"11011011",
			"11111111",
			"01100110",
			"11000011",
		},
		{
			"00111100",
			"01111110",
			"11111111",
			"11011011",
			"11111111",
			"01100110",
			"01100110",
		},
	},
	SpriteCrab: {
		{
			"01100110",
			"11111111",
			"11011011",
			"11111111",
			"00111100",
			"01111110",
			"11000011",
		},
		{
			"01100110",
			"11111111",
			"11011011",
			"11111111",
			"00111100",
			"01111110",
			"01100110",
		},
	},
	SpriteOctopus: {
		{
			"00111100",
			"01111110",
			"11111111",
			"10111101",
			"11111111",
			"01011010",
			"10100101",
		},
		{
			"00111100",
			"01111110",
			"11111111",
			"10111101",
			"11111111",
			"01011010",
			"00110110",
		},
	},
}

var mysteryMask = []string{
	"000111000",
	"001111100",
	"011111110",
	"101101101",
	"011101110",
	"001000100",
}

// maskImage rasterizes a binary pixel mask at the given pixel size.
func maskImage(mask []string, pixelSize int, tint color.RGBA) *image.RGBA {
	rows := len(mask)
	cols := len(mask[0])
	img := image.NewRGBA(image.Rect(0, 0, cols*pixelSize, rows*pixelSize))

	for y, row := range mask {
		for x, c := range row {
			if c != '1' {
				continue
			}
			for dy := 0; dy < pixelSize; dy++ {
				for dx := 0; dx < pixelSize; dx++ {
					img.SetRGBA(x*pixelSize+dx, y*pixelSize+dy, tint)
				}
			}
		}
	}
	return img
}

type spriteKey struct {
	id    SpriteID
	tint  int
	frame int
}

// Atlas holds the prepared sprite images. Create it with NewAtlas after the
// graphics context is available.
type Atlas struct {
	images map[spriteKey]*ebiten.Image
}

// spriteFiles maps the simple sprites to their override file names.
var spriteFiles = map[SpriteID]string{
	SpritePlayer:      "player.png",
	SpriteBullet:      "bullet.png",
	SpriteAlienBullet: "alien_bullet.png",
	SpriteMystery:     "mystery_ship.png",
}

var alienNames = map[SpriteID]string{
	SpriteSquid:   "squid",
	SpriteCrab:    "crab",
	SpriteOctopus: "octopus",
}

// NewAtlas builds all sprites. When dir is non-empty, a matching PNG in that
// directory replaces the generated image; load failures fall back with a
// warning.
func NewAtlas(dir string, log *slog.Logger) *Atlas {
	if log == nil {
		log = slog.Default()
	}

	a := &Atlas{images: make(map[spriteKey]*ebiten.Image)}

	load := func(key spriteKey, file string, mask []string, pixelSize int, tint color.RGBA) {
		if dir != "" {
			if img, err := loadPNG(filepath.Join(dir, file)); err == nil {
				a.images[key] = img
				return
			} else if !os.IsNotExist(err) {
				log.Warn("loading sprite, using generated fallback", "file", file, "error", err)
			}
		}
		a.images[key] = ebiten.NewImageFromImage(maskImage(mask, pixelSize, tint))
	}

	load(spriteKey{id: SpritePlayer}, spriteFiles[SpritePlayer], playerMask, 6, color.RGBA{0, 255, 0, 255})
	load(spriteKey{id: SpriteBullet}, spriteFiles[SpriteBullet], bulletMask, 5, color.RGBA{255, 255, 0, 255})
	load(spriteKey{id: SpriteAlienBullet}, spriteFiles[SpriteAlienBullet], alienBulletMask, 5, color.RGBA{255, 0, 255, 255})
	load(spriteKey{id: SpriteMystery}, spriteFiles[SpriteMystery], mysteryMask, 5, color.RGBA{200, 160, 255, 255})

	for id, masks := range alienMasks {
		for tint := 0; tint < AlienColorCount; tint++ {
			for frame := 0; frame < 2; frame++ {
				file := fmt.Sprintf("alien_%s_%d_%d.png", alienNames[id], tint, frame)
				load(spriteKey{id: id, tint: tint, frame: frame}, file, masks[frame], 5, alienPalette[tint])
			}
		}
	}

	return a
}

func loadPNG(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Sprite returns a non-animated sprite image.
func (a *Atlas) Sprite(id SpriteID) *ebiten.Image {
	return a.images[spriteKey{id: id}]
}

// Alien returns the alien sprite for a kind, palette tint, and walk frame.
func (a *Atlas) Alien(id SpriteID, tint, frame int) *ebiten.Image {
	return a.images[spriteKey{id: id, tint: tint % AlienColorCount, frame: frame % 2}]
}
