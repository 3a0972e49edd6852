package game

import (
	"fmt"

	"github.com/vovakirdan/termsnake/internal/core"
)

// hudHeight is the number of screen lines above the field.
const hudHeight = 2

// Style maps cell types to glyphs and colors. The head uses a distinct
// shade from the body, and the fruit a distinct color, mirroring the
// palette of the SDL original.
type Style struct {
	HeadRune   rune
	BodyRune   rune
	FruitRune  rune
	HeadColor  core.Color
	BodyColor  core.Color
	FruitColor core.Color
}

// DefaultStyle returns the default glyphs and colors.
func DefaultStyle() Style {
	return Style{
		HeadRune:   'O',
		BodyRune:   'o',
		FruitRune:  '*',
		HeadColor:  core.ColorGreen,
		BodyColor:  core.ColorBrightGreen,
		FruitColor: core.ColorBrightRed,
	}
}

// Render draws the session into the screen buffer: HUD, bordered field,
// cells, and a terminal overlay once the session has ended.
func (s *Session) Render(dst *core.Screen, style Style) {
	dst.Clear()

	s.renderHUD(dst)

	boxW := s.grid.Width() + 2
	boxH := s.grid.Height() + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		s.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - boxW) / 2
	offY := hudHeight

	dst.DrawBox(offX, offY, boxW, boxH)

	for row := 0; row < s.grid.Height(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			x := offX + 1 + col
			y := offY + 1 + row
			switch s.grid.At(Position{Row: row, Col: col}) {
			case CellSnakeHead:
				dst.SetCell(x, y, style.HeadRune, style.HeadColor)
			case CellSnakeBody:
				dst.SetCell(x, y, style.BodyRune, style.BodyColor)
			case CellFruit:
				dst.SetCell(x, y, style.FruitRune, style.FruitColor)
			}
		}
	}

	if s.status == StatusTerminated {
		switch s.outcome {
		case OutcomeWin:
			s.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", s.Score()))
		case OutcomeLoss:
			s.renderOverlay(dst, "Game Over", "Press R to restart")
		}
	}
}

// renderHUD draws the top status bar with the current score.
func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d", s.Score())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
