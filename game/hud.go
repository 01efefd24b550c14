package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ScoreEntry is one row of the persisted high-score table.
type ScoreEntry struct {
	Initials string
	Score    int
}

// ScoreLister exposes the table for the end screens.
type ScoreLister interface {
	Top() []ScoreEntry
}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const hudLineHeight = 26

func drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, hudFace, op)
}

// drawTextCentered centers str horizontally at the given baseline.
func drawTextCentered(screen *ebiten.Image, str string, y, scale float64, clr color.Color) {
	w, _ := text.Measure(str, hudFace, 0)
	drawText(screen, str, WorldW/2-w*scale/2, y, scale, clr)
}

var (
	hudWhite  = color.RGBA{230, 230, 230, 255}
	hudGreen  = color.RGBA{0, 255, 0, 255}
	hudYellow = color.RGBA{255, 255, 0, 255}
	hudRed    = color.RGBA{255, 80, 80, 255}
)

func (r *Renderer) drawMenu(screen *ebiten.Image) {
	drawTextCentered(screen, "SPACE INVADERS", 220, 5, hudGreen)
	drawTextCentered(screen, "E - Easy    M - Medium    H - Hard", 340, 2.5, hudWhite)
	drawTextCentered(screen, "Arrows / A D move    Space fires    P pauses", 420, 2, hudWhite)
	drawTextCentered(screen, "R restarts    Q quits", 455, 2, hudWhite)
	r.drawScoreTable(screen, 530)
}

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	s := r.session
	drawText(screen, fmt.Sprintf("SCORE %06d", s.Score), 10, 8, 2, hudWhite)
	drawText(screen, fmt.Sprintf("LIVES %d", s.Lives), 300, 8, 2, hudGreen)
	drawText(screen, fmt.Sprintf("LEVEL %d", s.Level), 450, 8, 2, hudWhite)
	drawText(screen, s.Difficulty.String(), 600, 8, 2, hudYellow)
}

func (r *Renderer) drawPaused(screen *ebiten.Image) {
	drawTextCentered(screen, "PAUSED", 380, 4, hudYellow)
	drawTextCentered(screen, "P resumes", 440, 2, hudWhite)
}

func (r *Renderer) drawEndScreen(screen *ebiten.Image, title string) {
	clr := hudRed
	if r.session.Mode == ModeVictory {
		clr = hudGreen
	}
	drawTextCentered(screen, title, 250, 5, clr)
	drawTextCentered(screen, fmt.Sprintf("FINAL SCORE %d", r.session.Score), 330, 2.5, hudWhite)

	if r.session.EnteringInitials {
		drawTextCentered(screen, "NEW HIGH SCORE!", 400, 2.5, hudYellow)
		drawTextCentered(screen, fmt.Sprintf("Enter initials: %-3s", r.session.Initials+"_"), 440, 2.5, hudWhite)
		drawTextCentered(screen, "Enter confirms    Backspace erases", 480, 2, hudWhite)
	} else {
		drawTextCentered(screen, "R returns to menu    Q quits", 400, 2, hudWhite)
		r.drawScoreTable(screen, 460)
	}
}

func (r *Renderer) drawScoreTable(screen *ebiten.Image, y float64) {
	if r.lister == nil {
		return
	}
	entries := r.lister.Top()
	if len(entries) == 0 {
		return
	}

	drawTextCentered(screen, "HIGH SCORES", y, 2.5, hudYellow)
	y += hudLineHeight + 10
	for i, e := range entries {
		line := fmt.Sprintf("%2d. %-3s %6d", i+1, e.Initials, e.Score)
		drawTextCentered(screen, line, y, 2, hudWhite)
		y += hudLineHeight
	}
}
