package aim

import "fmt"

// recordingPresenter records every call and mirrors what a screen would show.
type recordingPresenter struct {
	w, h    float64
	calls   []string
	view    string
	score   int
	time    int
	final   int
	best    int
	flashes int
	visible map[TargetID]Target
}

func newRecorder(w, h float64) *recordingPresenter {
	return &recordingPresenter{w: w, h: h, visible: make(map[TargetID]Target)}
}

func (r *recordingPresenter) ShowMenu() {
	r.calls = append(r.calls, "menu")
	r.view = "menu"
}

func (r *recordingPresenter) ShowActive() {
	r.calls = append(r.calls, "active")
	r.view = "active"
}

func (r *recordingPresenter) ShowEnded(finalScore int) {
	r.calls = append(r.calls, fmt.Sprintf("ended(%d)", finalScore))
	r.view = "ended"
	r.final = finalScore
}

func (r *recordingPresenter) UpdateHUD(score, timeLeft int) {
	r.score, r.time = score, timeLeft
}

func (r *recordingPresenter) RenderTarget(t Target) {
	r.visible[t.ID] = t
}

func (r *recordingPresenter) RemoveTarget(id TargetID) {
	delete(r.visible, id)
}

func (r *recordingPresenter) FlashMissFeedback() {
	r.flashes++
}

func (r *recordingPresenter) DisplayBestScore(best int) {
	r.calls = append(r.calls, fmt.Sprintf("best(%d)", best))
	r.best = best
}

func (r *recordingPresenter) PlayArea() (float64, float64) {
	return r.w, r.h
}

func (r *recordingPresenter) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// countingStore is a BestScoreStore that counts writes.
type countingStore struct {
	value  int
	writes int
}

func (s *countingStore) Read() int { return s.value }

func (s *countingStore) Write(score int) {
	s.value = score
	s.writes++
}
