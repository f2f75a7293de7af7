package storage

import "testing"

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	b := NewBestScore(store, "aimlab_best", nil)

	if got := b.Read(); got != 0 {
		t.Errorf("Read() on empty store = %d, expected 0", got)
	}

	b.Write(35)

	// A fresh adapter sees the persisted value
	if got := NewBestScore(store, "aimlab_best", nil).Read(); got != 35 {
		t.Errorf("Read() = %d, expected 35", got)
	}
}

func TestBestScoreCorruptValuesReadAsZero(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "lots"},
		{"negative", "-10"},
		{"empty", ""},
		{"float", "12.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			store.Set("aimlab_best", tc.value)

			if got := NewBestScore(store, "aimlab_best", nil).Read(); got != 0 {
				t.Errorf("Read() = %d, expected 0 for %q", got, tc.value)
			}
		})
	}
}

func TestBestScoreToleratesWhitespace(t *testing.T) {
	store := openTestStore(t)
	store.Set("aimlab_best", " 42\n")

	if got := NewBestScore(store, "aimlab_best", nil).Read(); got != 42 {
		t.Errorf("Read() = %d, expected 42", got)
	}
}

func TestBestScoreSwallowsClosedDatabase(t *testing.T) {
	store := openTestStore(t)
	b := NewBestScore(store, "aimlab_best", nil)
	store.Close()

	// Neither call may panic or surface an error
	b.Write(50)
	if got := b.Read(); got != 50 {
		t.Errorf("Read() after failed write = %d, expected session-only value 50", got)
	}
}

func TestBestScoreNilStore(t *testing.T) {
	b := NewBestScore(nil, "aimlab_best", nil)

	if got := b.Read(); got != 0 {
		t.Errorf("Read() = %d, expected 0", got)
	}
	b.Write(70)
	if got := b.Read(); got != 70 {
		t.Errorf("Read() = %d, expected 70 kept in memory", got)
	}
	if err := b.Reset(); err != nil || b.Read() != 0 {
		t.Errorf("Reset() = %v, Read() = %d", err, b.Read())
	}
}

func TestBestScoreKeysAreIndependent(t *testing.T) {
	store := openTestStore(t)
	NewBestScore(store, "a", nil).Write(10)
	NewBestScore(store, "b", nil).Write(20)

	if got := NewBestScore(store, "a", nil).Read(); got != 10 {
		t.Errorf("key a = %d, expected 10", got)
	}
	if err := NewBestScore(store, "b", nil).Reset(); err != nil {
		t.Fatal(err)
	}
	if got := NewBestScore(store, "a", nil).Read(); got != 10 {
		t.Errorf("resetting b changed a: %d", got)
	}
}
