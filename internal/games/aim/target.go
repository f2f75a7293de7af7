package aim

import "github.com/vovakirdan/tui-aimlab/internal/core"

// TargetID is the identity of a spawned target, unique per controller.
type TargetID uint64

// Target is a transient clickable square in play-area pixels.
type Target struct {
	ID         TargetID
	X, Y       float64 // Top-left corner
	Size       float64
	Difficulty DifficultyID
	Hit        bool // Clicked and waiting for removal
}

// Bounds returns the target's hit region.
func (t Target) Bounds() core.RectF {
	return core.RectF{X: t.X, Y: t.Y, W: t.Size, H: t.Size}
}
