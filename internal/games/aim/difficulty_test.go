package aim

import "testing"

func TestProfilesArePositive(t *testing.T) {
	for _, p := range Profiles() {
		if p.Size <= 0 || p.Points <= 0 || p.Penalty <= 0 {
			t.Errorf("profile %s has non-positive values: %+v", p.ID, p)
		}
	}
}

func TestProfileTable(t *testing.T) {
	tests := []struct {
		id          DifficultyID
		size        float64
		points      int
		penalty     int
		missPenalty int
	}{
		{Easy, 80, 10, 5, 2},
		{Medium, 60, 15, 8, 4},
		{Hard, 46, 20, 10, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			p := Profile(tc.id)
			if p.ID != tc.id || p.Size != tc.size || p.Points != tc.points || p.Penalty != tc.penalty {
				t.Errorf("Profile(%s) = %+v", tc.id, p)
			}
			if got := p.MissPenalty(); got != tc.missPenalty {
				t.Errorf("MissPenalty() = %d, expected %d", got, tc.missPenalty)
			}
		})
	}
}

func TestProfilesOrder(t *testing.T) {
	ps := Profiles()
	if len(ps) != 3 || ps[0].ID != Easy || ps[1].ID != Medium || ps[2].ID != Hard {
		t.Errorf("Profiles() order = %v", ps)
	}
}

func TestProfileUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Profile with unknown id should panic")
		}
	}()
	Profile("nightmare")
}
