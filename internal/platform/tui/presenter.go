package tui

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/tui-aimlab/internal/core"
	"github.com/vovakirdan/tui-aimlab/internal/games/aim"
)

// Rows above the play area.
const hudRows = 1

type view int

const (
	viewMenu view = iota
	viewActive
	viewEnded
)

// frameInfo carries the per-frame details the session does not push
// through the presenter.
type frameInfo struct {
	profile    aim.DifficultyProfile
	duration   int // Seconds
	stats      aim.Stats
	reason     aim.EndReason
	cursorCol  int
	cursorRow  int
	confirming bool
}

// ScreenPresenter implements aim.Presenter on a terminal cell grid.
// Every cell stands for cellW x cellH play-area pixels; row 0 is the HUD and
// the play area starts below it.
type ScreenPresenter struct {
	cellW, cellH float64
	cols, rows   int

	view     view
	score    int
	timeLeft int
	best     int
	final    int
	newBest  bool
	targets  map[aim.TargetID]aim.Target

	flashLen  time.Duration
	flashLeft time.Duration
}

// NewScreenPresenter creates a presenter with the given cell size in pixels
// and miss flash duration.
func NewScreenPresenter(cellW, cellH float64, flash time.Duration) *ScreenPresenter {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &ScreenPresenter{
		cellW:    cellW,
		cellH:    cellH,
		targets:  make(map[aim.TargetID]aim.Target),
		flashLen: flash,
	}
}

// SetPlayArea sets the play-area size in cells.
func (p *ScreenPresenter) SetPlayArea(cols, rows int) {
	p.cols = max(cols, 0)
	p.rows = max(rows, 0)
}

// PlayAreaCells returns the play-area size in cells.
func (p *ScreenPresenter) PlayAreaCells() (cols, rows int) {
	return p.cols, p.rows
}

// CellCenter returns the pixel position of a play-area cell's center.
func (p *ScreenPresenter) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * p.cellW, (float64(row) + 0.5) * p.cellH
}

// InPlayArea reports whether a play-area cell exists.
func (p *ScreenPresenter) InPlayArea(col, row int) bool {
	return col >= 0 && col < p.cols && row >= 0 && row < p.rows
}

// Advance runs presentation timers.
func (p *ScreenPresenter) Advance(dt time.Duration) {
	if p.flashLeft > 0 {
		p.flashLeft = max(p.flashLeft-dt, 0)
	}
}

// Flashing reports whether miss feedback is showing.
func (p *ScreenPresenter) Flashing() bool {
	return p.flashLeft > 0
}

// Visible returns the targets currently drawn, in spawn order.
func (p *ScreenPresenter) Visible() []aim.Target {
	out := make([]aim.Target, 0, len(p.targets))
	for _, t := range p.targets {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b aim.Target) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// aim.Presenter

func (p *ScreenPresenter) ShowMenu() {
	p.view = viewMenu
	p.newBest = false
	p.flashLeft = 0
}

func (p *ScreenPresenter) ShowActive() {
	p.view = viewActive
	p.newBest = false
	p.flashLeft = 0
}

func (p *ScreenPresenter) ShowEnded(finalScore int) {
	p.view = viewEnded
	p.final = finalScore
	p.newBest = false
	p.flashLeft = 0
}

func (p *ScreenPresenter) UpdateHUD(score, timeLeft int) {
	p.score = score
	p.timeLeft = timeLeft
}

func (p *ScreenPresenter) RenderTarget(t aim.Target) {
	p.targets[t.ID] = t
}

func (p *ScreenPresenter) RemoveTarget(id aim.TargetID) {
	delete(p.targets, id)
}

func (p *ScreenPresenter) FlashMissFeedback() {
	p.flashLeft = p.flashLen
}

// DisplayBestScore shows the best score. Arriving on the end screen it
// marks a new record.
func (p *ScreenPresenter) DisplayBestScore(best int) {
	p.best = best
	if p.view == viewEnded {
		p.newBest = true
	}
}

func (p *ScreenPresenter) PlayArea() (w, h float64) {
	return float64(p.cols) * p.cellW, float64(p.rows) * p.cellH
}

// targetCells returns the play-area cells whose centers fall inside the
// target, the same cells a click can hit.
func (p *ScreenPresenter) targetCells(t aim.Target) (core.Rect, bool) {
	b := t.Bounds()
	c0 := int(math.Floor(b.X / p.cellW))
	c1 := int(math.Ceil(b.Right() / p.cellW))
	r0 := int(math.Floor(b.Y / p.cellH))
	r1 := int(math.Ceil(b.Bottom() / p.cellH))

	minC, minR, maxC, maxR := math.MaxInt, math.MaxInt, -1, -1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := p.CellCenter(col, row)
			if !b.Contains(x, y) {
				continue
			}
			minC, maxC = min(minC, col), max(maxC, col)
			minR, maxR = min(minR, row), max(maxR, row)
		}
	}
	if maxC < 0 {
		return core.Rect{}, false
	}
	return core.NewRect(minC, minR, maxC-minC+1, maxR-minR+1), true
}

// Render draws the current view into s.
func (p *ScreenPresenter) Render(s *core.Screen, f frameInfo) {
	s.Clear()
	p.drawHUD(s, f)

	switch p.view {
	case viewMenu:
		p.drawMenu(s, f)
	case viewActive:
		p.drawTargets(s)
		p.drawCrosshair(s, f)
	case viewEnded:
		p.drawEnded(s, f)
	}

	if f.confirming {
		drawPanel(s, core.ColorBrightRed, []panelLine{
			{"End this session now?", core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"y: end   n: keep playing", core.ColorGray},
		})
	}
}

func (p *ScreenPresenter) drawHUD(s *core.Screen, f frameInfo) {
	color := core.ColorCyan
	if p.Flashing() {
		color = core.ColorBrightRed
	}
	s.FillRect(core.NewRect(0, 0, s.Width(), hudRows), ' ', color)

	if p.view != viewActive {
		s.DrawTextCentered(0, "AIM LAB", color)
		s.DrawTextColor(1, 0, fmt.Sprintf("Best %d", p.best), core.ColorGray)
		return
	}
	s.DrawTextColor(1, 0, "AIM LAB", color)

	hud := fmt.Sprintf("Score %-5d Best %-5d %s", p.score, p.best, f.profile.ID)
	s.DrawTextColor(10, 0, hud, color)

	timeColor := core.ColorBrightWhite
	if p.timeLeft <= 10 {
		timeColor = core.ColorYellow
	}
	timeText := fmt.Sprintf("%2ds", p.timeLeft)
	s.DrawTextColor(s.Width()-len(timeText)-1, 0, timeText, timeColor)

	if p.Flashing() {
		s.DrawTextColor(10+len(hud)+2, 0, fmt.Sprintf("MISS -%d", f.profile.MissPenalty()), core.ColorBrightRed)
	}
}

func targetColor(t aim.Target) core.Color {
	if t.Hit {
		return core.ColorGray
	}
	switch t.Difficulty {
	case aim.Easy:
		return core.ColorGreen
	case aim.Medium:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func (p *ScreenPresenter) drawTargets(s *core.Screen) {
	// Older first so the newest lands on top, as hit testing expects.
	for _, t := range p.Visible() {
		r, ok := p.targetCells(t)
		if !ok {
			continue
		}
		r.Y += hudRows
		color := targetColor(t)

		switch {
		case t.Hit:
			s.FillRect(r, '░', color)
		case r.W >= 2 && r.H >= 2:
			s.DrawBox(r, color)
			s.SetColor(r.X+r.W/2, r.Y+r.H/2, '●', color)
		default:
			s.FillRect(r, '●', color)
		}
	}
}

func (p *ScreenPresenter) drawCrosshair(s *core.Screen, f frameInfo) {
	if f.confirming || !p.InPlayArea(f.cursorCol, f.cursorRow) {
		return
	}
	color := core.ColorBrightWhite
	if p.Flashing() {
		color = core.ColorBrightRed
	}
	s.SetColor(f.cursorCol, f.cursorRow+hudRows, '+', color)
}

func (p *ScreenPresenter) drawMenu(s *core.Screen, f frameInfo) {
	drawPanel(s, core.ColorCyan, []panelLine{
		{"AIM LAB", core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"Hit the targets before the clock runs out.", core.ColorDefault},
		{fmt.Sprintf("Mode %s: %.0fpx targets, +%d per hit, -%d per miss",
			f.profile.ID, f.profile.Size, f.profile.Points, f.profile.MissPenalty()), core.ColorDefault},
		{fmt.Sprintf("Session: %ds", f.duration), core.ColorDefault},
		{fmt.Sprintf("Best: %d", p.best), core.ColorOrange},
		{"", core.ColorDefault},
		{"Click or press Enter to play", core.ColorGreen},
	})
}

func (p *ScreenPresenter) drawEnded(s *core.Screen, f frameInfo) {
	title := "TIME'S UP"
	if f.reason == aim.EndExit {
		title = "SESSION FINISHED"
	}

	bestLine := panelLine{fmt.Sprintf("Best: %d", p.best), core.ColorGray}
	if p.newBest {
		bestLine = panelLine{"NEW BEST!", core.ColorOrange}
	}

	drawPanel(s, core.ColorYellow, []panelLine{
		{title, core.ColorBrightWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("Final score: %d", p.final), core.ColorBrightWhite},
		bestLine,
		{fmt.Sprintf("Hits %d  Misses %d  Accuracy %.0f%%",
			f.stats.Hits, f.stats.Misses, f.stats.Accuracy()), core.ColorDefault},
		{"", core.ColorDefault},
		{"Press r or Enter for the menu", core.ColorGreen},
	})
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed block of centered lines in the middle of s.
func drawPanel(s *core.Screen, border core.Color, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (s.Width() - box.W) / 2
	box.Y = hudRows + max((s.Height()-hudRows-box.H)/2, 0)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, border)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l.text)))/2
		s.DrawTextColor(x, box.Y+1+i, l.text, l.color)
	}
}
