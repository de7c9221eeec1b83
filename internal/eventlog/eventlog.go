// Package eventlog is the append only console shown at the bottom of the window.
package eventlog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TimeLayout renders entry timestamps as HH:MM:SS.
const TimeLayout = "15:04:05"

type Entry struct {
	Time    time.Time
	Message string
}

// String renders the entry the way the console shows it.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format(TimeLayout), e.Message)
}

// Log is safe for concurrent use. Entries are never dropped.
type Log struct {
	mu          sync.Mutex
	entries     []Entry
	now         func() time.Time
	subscribers []func(Entry)
	logger      *zerolog.Logger
}

type Option func(*Log)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithLogger mirrors every entry to the given logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Log) { l.logger = &logger }
}

func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log appends message and notifies subscribers outside the lock.
func (l *Log) Log(message string) Entry {
	l.mu.Lock()
	entry := Entry{Time: l.now(), Message: message}
	l.entries = append(l.entries, entry)
	subs := make([]func(Entry), len(l.subscribers))
	copy(subs, l.subscribers)
	l.mu.Unlock()

	if l.logger != nil {
		l.logger.Debug().Str("event", message).Msg("console")
	}
	for _, fn := range subs {
		fn(entry)
	}
	return entry
}

// Logf is Log with fmt.Sprintf formatting.
func (l *Log) Logf(format string, args ...any) Entry {
	return l.Log(fmt.Sprintf(format, args...))
}

// Subscribe registers fn to be called after each append.
func (l *Log) Subscribe(fn func(Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// Entries returns a copy of all entries in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Lines renders all entries.
func (l *Log) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// String renders the whole console, one entry per line with a trailing newline.
func (l *Log) String() string {
	lines := l.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
