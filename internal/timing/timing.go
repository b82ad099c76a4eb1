// Package timing records nested stage durations and logs them through the
// gnark logger.
package timing

import (
	"strings"
	"sync"
	"time"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

type span struct {
	name  string
	depth int
	start time.Time
	dur   time.Duration
	open  bool
}

// Tree collects spans. A nil *Tree is valid and records nothing.
type Tree struct {
	mu    sync.Mutex
	name  string
	log   zerolog.Logger
	spans []*span
	depth int
}

// New returns a tree logging to the current gnark logger.
func New(name string) *Tree {
	return &Tree{name: name, log: logger.Logger()}
}

// Span opens a span nested in the currently open ones. The returned
// function closes it and logs its duration at debug level.
func (t *Tree) Span(name string) func() {
	if t == nil {
		return func() {}
	}
	t.mu.Lock()
	s := &span{name: name, depth: t.depth, start: time.Now(), open: true}
	t.spans = append(t.spans, s)
	t.depth++
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			s.dur = time.Since(s.start)
			s.open = false
			t.depth--
			t.log.Debug().Str("tree", t.name).Str("span", name).Dur("took", s.dur).Msg("done")
		})
	}
}

// Durations returns the duration of every closed span by name. Repeated
// names are summed.
func (t *Tree) Durations() map[string]time.Duration {
	out := make(map[string]time.Duration)
	if t == nil {
		return out
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range t.spans {
		if !s.open {
			out[s.name] += s.dur
		}
	}
	return out
}

// Print logs every span, indented by depth. Spans still open are reported
// with their elapsed time.
func (t *Tree) Print() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range t.spans {
		d := s.dur
		if s.open {
			d = time.Since(s.start)
		}
		t.log.Info().
			Str("tree", t.name).
			Bool("open", s.open).
			Dur("took", d).
			Msg(strings.Repeat("| ", s.depth) + s.name)
	}
}
