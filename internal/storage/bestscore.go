package storage

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// BestScore adapts a Store to the game's best-score contract.
// Every storage failure is logged and swallowed: reads fall back to the last
// value this adapter saw (0 at first), writes are kept in memory only. With a
// nil Store the best score lives for the session alone.
type BestScore struct {
	store  *Store
	key    string
	logger *log.Logger
	cached int
}

// NewBestScore creates an adapter for the given key. store and logger may be nil.
func NewBestScore(store *Store, key string, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScore{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Read returns the stored best score, or 0 when it is absent, corrupt or
// the database is unavailable.
func (b *BestScore) Read() int {
	if b.store == nil {
		return b.cached
	}

	e, err := b.store.Get(b.key)
	if errors.Is(err, ErrNotFound) {
		return b.cached
	}
	if err != nil {
		b.logger.Warn("best score unavailable", "key", b.key, "error", err)
		return b.cached
	}

	v, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil || v < 0 {
		b.logger.Warn("ignoring corrupt best score", "key", b.key, "value", e.Value)
		return 0
	}

	b.cached = v
	return v
}

// Write persists a new best score. Failures are logged, never returned.
func (b *BestScore) Write(score int) {
	b.cached = score
	if b.store == nil {
		return
	}

	if err := b.store.Set(b.key, strconv.Itoa(score)); err != nil {
		b.logger.Warn("best score not saved", "key", b.key, "score", score, "error", err)
		return
	}
	b.logger.Debug("best score saved", "key", b.key, "score", score)
}

// Reset removes the stored best score.
func (b *BestScore) Reset() error {
	b.cached = 0
	if b.store == nil {
		return nil
	}
	return b.store.Delete(b.key)
}
