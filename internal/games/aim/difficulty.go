package aim

import "fmt"

// DifficultyID identifies an entry in the profile table.
type DifficultyID string

const (
	Easy   DifficultyID = "easy"
	Medium DifficultyID = "medium"
	Hard   DifficultyID = "hard"
)

// missPenaltyDivisor halves the profile penalty on a miss (rounded down).
const missPenaltyDivisor = 2

// DifficultyProfile governs one session: target size in play-area pixels,
// points per hit and the base penalty for a miss.
type DifficultyProfile struct {
	ID      DifficultyID
	Size    float64
	Points  int
	Penalty int
}

// MissPenalty returns the score deducted for a miss.
func (p DifficultyProfile) MissPenalty() int {
	return p.Penalty / missPenaltyDivisor
}

var profiles = map[DifficultyID]DifficultyProfile{
	Easy:   {ID: Easy, Size: 80, Points: 10, Penalty: 5},
	Medium: {ID: Medium, Size: 60, Points: 15, Penalty: 8},
	Hard:   {ID: Hard, Size: 46, Points: 20, Penalty: 10},
}

// Profile looks up a difficulty profile.
// The id space is closed, so an unknown id is a programming error and panics.
func Profile(id DifficultyID) DifficultyProfile {
	p, ok := profiles[id]
	if !ok {
		panic(fmt.Sprintf("aim: unknown difficulty %q", id))
	}
	return p
}

// Profiles returns every profile ordered from easiest to hardest.
func Profiles() []DifficultyProfile {
	return []DifficultyProfile{profiles[Easy], profiles[Medium], profiles[Hard]}
}
