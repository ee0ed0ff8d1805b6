package highway

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

const (
	laneWidth = 7
	minW      = 40
	minH      = 14

	// Rows outside the highway: HUD (2), top border, bottom border, keys,
	// progress and help.
	chromeRows = 7
)

// Visual characters for rendering
const (
	NoteLeft   = '▐'
	NoteBody   = '█'
	NoteRight  = '▌'
	TailChar   = '┃'
	WindowChar = '░'
	KeyChar    = '▀'
)

var laneColors = [...]core.Color{core.ColorGreen, core.ColorRed, core.ColorBlue, core.ColorYellow}

// LaneKeys are the primary keys for each lane, as shown under the highway.
var LaneKeys = [...]string{"D", "F", "J", "K"}

var pitchNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName returns the scientific pitch name of a MIDI note, e.g. 60 -> C4.
func PitchName(pitch int) string {
	if pitch < 0 {
		return "?"
	}
	return fmt.Sprintf("%s%d", pitchNames[pitch%12], pitch/12-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minW || h < minH {
		g.renderTooSmall(dst)
		return
	}

	lanes := g.rules.Lanes
	boardW := lanes*(laneWidth+1) + 1
	boardX := (w - boardW) / 2
	rows := h - chromeRows
	top := 3

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, top, rows)
	g.renderNotes(dst, boardX, top, rows)
	g.renderKeys(dst, boardX, top+rows+1)
	g.renderFooter(dst, boardX, boardW, top+rows+2)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state.GameEnd {
		title := "SONG COMPLETE"
		if g.mode == ModeEndless {
			title = "GAME OVER"
		}
		sub := fmt.Sprintf("Score: %d  Acc: %d%%  |  Press R to restart", g.state.Score, percent(g.stats.Accuracy()))
		g.drawCenteredMessage(dst, title, sub)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextColor(boardX, 0, g.SongTitle(), core.ColorBrightWhite)
	best := fmt.Sprintf("Best %d", max(g.highScore, g.state.HighScore))
	dst.DrawTextColor(boardX+boardW-len(best), 0, best, core.ColorGray)

	line := fmt.Sprintf("Score %d  %s  Streak %d  Acc %d%%",
		g.state.Score, g.state.Multiplier, g.state.ConsecutiveNoteCount, percent(g.stats.Accuracy()))
	dst.DrawTextColor(boardX, 1, line, core.ColorWhite)
	if g.state.Multiplier > rhythm.MultiplierOne {
		// Re-draw the multiplier highlighted.
		x := boardX + len(fmt.Sprintf("Score %d  ", g.state.Score))
		dst.DrawTextColor(x, 1, g.state.Multiplier.String(), core.ColorBrightYellow)
	}
}

func (g *Game) renderBoard(dst *core.Screen, boardX, top, rows int) {
	lanes := g.rules.Lanes
	boardW := lanes*(laneWidth+1) + 1
	dst.DrawBox(core.NewRect(boardX, top-1, boardW, rows+2), core.ColorDarkGray)
	for i := 1; i < lanes; i++ {
		dst.DrawVLine(boardX+i*(laneWidth+1), top, rows, '│', core.ColorDarkGray)
	}

	// Hit window band
	windowRow := core.Scale(g.rules.MaxY-g.rules.ThresholdY, g.rules.MaxY, rows)
	for i := 0; i < lanes; i++ {
		x := laneX(boardX, i)
		for y := windowRow; y < rows; y++ {
			dst.DrawHLine(x, top+y, laneWidth, WindowChar, core.ColorDarkGray)
		}
	}
}

func (g *Game) renderNotes(dst *core.Screen, boardX, top, rows int) {
	for _, n := range g.state.UserNotes {
		lane := int(n.Column)
		if lane < 0 || lane >= g.rules.Lanes {
			continue
		}
		color := laneColors[lane]
		x := laneX(boardX, lane)
		row := core.Clamp(core.Scale(n.CY, g.rules.MaxY, rows), 0, rows-1)

		if n.Tail {
			tail := max(core.Scale(g.tailLength(n), g.rules.MaxY, rows), 1)
			for y := row - 1; y >= row-tail && y >= 0; y-- {
				dst.SetColor(x+laneWidth/2, top+y, TailChar, color)
			}
		}

		dst.SetColor(x, top+row, NoteLeft, color)
		dst.DrawHLine(x+1, top+row, laneWidth-2, NoteBody, color)
		dst.SetColor(x+laneWidth-1, top+row, NoteRight, color)
	}
}

// tailLength converts a note's duration into fall distance.
func (g *Game) tailLength(n rhythm.NoteProps) int {
	steps := n.Duration() * 1000 / float64(g.cfg.Timing.TickIntervalMS)
	return int(steps) * g.rules.AnimationStep
}

func (g *Game) renderKeys(dst *core.Screen, boardX, y int) {
	for i := 0; i < g.rules.Lanes; i++ {
		x := laneX(boardX, i)
		color := laneColors[i]
		if g.flash[i] > 0 {
			flash := color.Bright()
			if !g.flashOK[i] {
				flash = core.ColorGray
			}
			dst.DrawHLine(x, y, laneWidth, KeyChar, flash)
		}
		dst.DrawTextColor(x+laneWidth/2, y, LaneKeys[i], color)
	}
}

func (g *Game) renderFooter(dst *core.Screen, boardX, boardW, y int) {
	if g.mode == ModeEndless {
		level := g.difficulty.Level(g.state.Score, g.step)
		info := fmt.Sprintf("Level %.2f  Misses %d/%d", level, g.stats.Misses, g.cfg.Endless.MaxMisses)
		dst.DrawTextColor(boardX, y, info, core.ColorWhite)
	} else {
		barW := boardW - 6
		filled := int(g.Progress() * float64(barW))
		dst.DrawTextColor(boardX, y, strings.Repeat("━", filled), core.ColorCyan)
		dst.DrawTextColor(boardX+filled, y, strings.Repeat("─", barW-filled), core.ColorDarkGray)
		dst.DrawTextColor(boardX+barW+1, y, fmt.Sprintf("%3d%%", percent(g.Progress())), core.ColorGray)
	}

	if g.preview != nil {
		text := fmt.Sprintf("♪ %s %s", PitchName(g.preview.Pitch), g.preview.Instrument)
		dst.DrawTextColor(boardX+boardW+2, y, text, core.ColorMagenta)
	}

	dst.DrawTextCentered(y+1, "D F J K play · P pause · R restart · Q quit", core.ColorDarkGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}

func laneX(boardX, lane int) int {
	return boardX + lane*(laneWidth+1) + 1
}

func percent(f float64) int {
	return int(f*100 + 0.5)
}
