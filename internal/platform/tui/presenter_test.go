package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-aimlab/internal/core"
	"github.com/vovakirdan/tui-aimlab/internal/games/aim"
)

func newTestPresenter() *ScreenPresenter {
	p := NewScreenPresenter(8, 16, 200*time.Millisecond)
	p.SetPlayArea(80, 20)
	return p
}

func TestPresenterPlayArea(t *testing.T) {
	p := newTestPresenter()

	w, h := p.PlayArea()
	if w != 640 || h != 320 {
		t.Errorf("PlayArea() = %vx%v, expected 640x320", w, h)
	}

	p.SetPlayArea(-5, 3)
	if w, h := p.PlayArea(); w != 0 || h != 48 {
		t.Errorf("PlayArea() after negative cols = %vx%v, expected 0x48", w, h)
	}
}

func TestPresenterCellCenter(t *testing.T) {
	p := newTestPresenter()

	x, y := p.CellCenter(0, 0)
	if x != 4 || y != 8 {
		t.Errorf("CellCenter(0,0) = %v,%v, expected 4,8", x, y)
	}
	x, y = p.CellCenter(10, 3)
	if x != 84 || y != 56 {
		t.Errorf("CellCenter(10,3) = %v,%v, expected 84,56", x, y)
	}
}

func TestPresenterTargetCells(t *testing.T) {
	p := newTestPresenter()
	target := aim.Target{ID: 1, X: 0, Y: 0, Size: 46, Difficulty: aim.Hard}

	r, ok := p.targetCells(target)
	if !ok {
		t.Fatal("targetCells() found no cells")
	}
	if want := core.NewRect(0, 0, 6, 3); r != want {
		t.Errorf("targetCells() = %+v, expected %+v", r, want)
	}
}

func TestPresenterTargetCellsMatchHitTest(t *testing.T) {
	p := newTestPresenter()
	targets := []aim.Target{
		{ID: 1, X: 13.5, Y: 7.25, Size: 46},
		{ID: 2, X: 300, Y: 100, Size: 60},
		{ID: 3, X: 555, Y: 239, Size: 80},
	}

	for _, target := range targets {
		r, ok := p.targetCells(target)
		if !ok {
			t.Fatalf("target %d: no cells", target.ID)
		}
		b := target.Bounds()
		for row := r.Y - 1; row <= r.Bottom(); row++ {
			for col := r.X - 1; col <= r.Right(); col++ {
				x, y := p.CellCenter(col, row)
				if got, want := b.Contains(x, y), r.Contains(col, row); got != want {
					t.Errorf("target %d cell (%d,%d): hit=%v drawn=%v", target.ID, col, row, got, want)
				}
			}
		}
	}
}

func TestPresenterTracksTargets(t *testing.T) {
	p := newTestPresenter()

	p.RenderTarget(aim.Target{ID: 2})
	p.RenderTarget(aim.Target{ID: 1})
	p.RenderTarget(aim.Target{ID: 2, Hit: true})

	visible := p.Visible()
	if len(visible) != 2 {
		t.Fatalf("Visible() = %d targets, expected 2", len(visible))
	}
	if visible[0].ID != 1 || visible[1].ID != 2 {
		t.Errorf("Visible() not in spawn order: %+v", visible)
	}
	if !visible[1].Hit {
		t.Error("re-render should replace the target state")
	}

	p.RemoveTarget(2)
	p.RemoveTarget(99)
	if len(p.Visible()) != 1 {
		t.Errorf("Visible() after remove = %d targets, expected 1", len(p.Visible()))
	}
}

func TestPresenterMissFlash(t *testing.T) {
	p := newTestPresenter()
	p.ShowActive()

	p.FlashMissFeedback()
	if !p.Flashing() {
		t.Fatal("expected flash after miss")
	}

	p.Advance(150 * time.Millisecond)
	if !p.Flashing() {
		t.Error("flash ended too early")
	}
	p.Advance(50 * time.Millisecond)
	if p.Flashing() {
		t.Error("flash should end after its duration")
	}
}

func TestPresenterNewBestOnlyOnEndScreen(t *testing.T) {
	p := newTestPresenter()

	p.DisplayBestScore(40)
	if p.newBest {
		t.Error("best shown in the menu is not a new record")
	}

	p.ShowEnded(60)
	p.DisplayBestScore(60)
	if !p.newBest {
		t.Error("best shown on the end screen should mark a new record")
	}

	p.ShowMenu()
	if p.newBest {
		t.Error("menu should clear the new record marker")
	}
}

func TestPresenterRender(t *testing.T) {
	p := newTestPresenter()
	s := core.NewScreen(80, 21)
	info := frameInfo{profile: aim.Profile(aim.Hard), duration: 60, cursorCol: -1}

	p.DisplayBestScore(7)
	p.ShowMenu()
	p.Render(s, info)
	if out := s.String(); !strings.Contains(out, "AIM LAB") || !strings.Contains(out, "Best: 7") {
		t.Errorf("menu render missing title or best:\n%s", out)
	}

	p.ShowActive()
	p.UpdateHUD(40, 9)
	p.RenderTarget(aim.Target{ID: 1, X: 0, Y: 0, Size: 46, Difficulty: aim.Hard})
	p.Render(s, info)
	if hud := s.Row(0); !strings.Contains(hud, "Score 40") || !strings.Contains(hud, " 9s") {
		t.Errorf("HUD = %q", hud)
	}
	if got := s.GetCell(0, hudRows); got.Rune != '╭' || got.Color != core.ColorRed {
		t.Errorf("target corner = %+v, expected red box corner", got)
	}

	p.ShowEnded(40)
	p.DisplayBestScore(40)
	info.stats = aim.Stats{Hits: 2, Misses: 2}
	p.Render(s, info)
	out := s.String()
	for _, want := range []string{"TIME'S UP", "Final score: 40", "NEW BEST!", "Accuracy 50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("end screen missing %q:\n%s", want, out)
		}
	}
}

func TestPresenterRenderHitTarget(t *testing.T) {
	p := newTestPresenter()
	s := core.NewScreen(80, 21)

	p.ShowActive()
	p.RenderTarget(aim.Target{ID: 1, X: 0, Y: 0, Size: 46, Difficulty: aim.Easy, Hit: true})
	p.Render(s, frameInfo{profile: aim.Profile(aim.Easy), cursorCol: -1})

	if got := s.GetCell(1, hudRows+1); got.Rune != '░' || got.Color != core.ColorGray {
		t.Errorf("hit target cell = %+v, expected gray fill", got)
	}
}
