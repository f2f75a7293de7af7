package aim

// Presenter is the rendering side of a session.
// The controller only emits state and render requests through it; pixel
// units, styling and layout belong to the implementation.
type Presenter interface {
	ShowMenu()
	ShowActive()
	ShowEnded(finalScore int)
	UpdateHUD(score, timeLeft int)

	// RenderTarget draws a target or redraws it in its current state.
	RenderTarget(t Target)
	RemoveTarget(id TargetID)
	FlashMissFeedback()
	DisplayBestScore(best int)

	// PlayArea reports the current play-area size in pixels.
	PlayArea() (w, h float64)
}

// BestScoreStore persists the all-time best score.
// Implementations must swallow storage failures: Read returns 0 when the
// value is absent or unreadable and Write never reports an error.
type BestScoreStore interface {
	Read() int
	Write(score int)
}

// NopPresenter discards every request and reports an empty play area.
type NopPresenter struct{}

func (NopPresenter) ShowMenu()                    {}
func (NopPresenter) ShowActive()                  {}
func (NopPresenter) ShowEnded(int)                {}
func (NopPresenter) UpdateHUD(int, int)           {}
func (NopPresenter) RenderTarget(Target)          {}
func (NopPresenter) RemoveTarget(TargetID)        {}
func (NopPresenter) FlashMissFeedback()           {}
func (NopPresenter) DisplayBestScore(int)         {}
func (NopPresenter) PlayArea() (float64, float64) { return 0, 0 }

// MemoryBestScore keeps the best score for the lifetime of the process only.
type MemoryBestScore struct {
	value int
}

// NewMemoryBestScore creates a store seeded with an initial best.
func NewMemoryBestScore(initial int) *MemoryBestScore {
	return &MemoryBestScore{value: max(initial, 0)}
}

func (m *MemoryBestScore) Read() int {
	return m.value
}

func (m *MemoryBestScore) Write(score int) {
	m.value = score
}

var (
	_ Presenter      = NopPresenter{}
	_ BestScoreStore = (*MemoryBestScore)(nil)
)
