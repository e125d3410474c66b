package logbuf

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
)

const (
	// DefaultCapacity matches the dashboard's visible log window.
	DefaultCapacity = 50
	// TimestampLayout is the human-readable capture time stored on each entry.
	TimestampLayout = "15:04:05"
)

// ErrInvalidCapacity is returned by New for a non-positive capacity.
var ErrInvalidCapacity = errors.New("logbuf: capacity must be positive")

// Option customises a Buffer.
type Option func(*Buffer)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Buffer) {
		if now != nil {
			b.now = now
		}
	}
}

// WithTimestampLayout overrides the time format used for Timestamp.
func WithTimestampLayout(layout string) Option {
	return func(b *Buffer) {
		if layout != "" {
			b.layout = layout
		}
	}
}

// WithPublisher sends a change notification for every mutation.
func WithPublisher(p model.Publisher) Option {
	return func(b *Buffer) {
		if p != nil {
			b.pub = p
		}
	}
}

// Buffer keeps the most recent entries in creation order, evicting the oldest
// once full.
type Buffer struct {
	mu       sync.RWMutex
	capacity int
	entries  []model.LogEntry
	nextID   uint64
	now      func() time.Time
	layout   string
	pub      model.Publisher
}

// New creates an empty buffer holding at most capacity entries.
func New(capacity int, opts ...Option) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	b := &Buffer{
		capacity: capacity,
		entries:  make([]model.LogEntry, 0, capacity),
		nextID:   1,
		now:      time.Now,
		layout:   TimestampLayout,
		pub:      model.Discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Append records a new entry stamped with the next id and the current time.
func (b *Buffer) Append(level model.Level, message string) model.LogEntry {
	ts := b.now()
	return b.insert(level, message, ts, ts.Format(b.layout))
}

// Restore appends an entry that keeps its original timestamp text, e.g. one
// parsed from a previous export. It still receives a fresh id.
func (b *Buffer) Restore(level model.Level, message, timestamp string) model.LogEntry {
	ts := b.now()
	if timestamp == "" {
		timestamp = ts.Format(b.layout)
	}
	return b.insert(level, message, ts, timestamp)
}

// lineBreaks keeps one entry on one export line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func (b *Buffer) insert(level model.Level, message string, ts time.Time, stamp string) model.LogEntry {
	message = lineBreaks.Replace(message)
	stamp = lineBreaks.Replace(stamp)

	b.mu.Lock()
	defer b.mu.Unlock()

	entry := model.LogEntry{
		ID:        b.nextID,
		Timestamp: stamp,
		Time:      ts,
		Level:     level,
		Message:   message,
	}
	b.nextID++

	evicted := 0
	if len(b.entries) >= b.capacity {
		evicted = len(b.entries) - b.capacity + 1
		n := copy(b.entries, b.entries[evicted:])
		b.entries = b.entries[:n]
	}
	b.entries = append(b.entries, entry)

	// Published under the lock so subscribers see ids in order.
	e := entry
	b.pub.Publish(model.Event{Kind: model.EventLogAppended, Time: ts, Entry: &e, Evicted: evicted})
	return entry
}

// Clear drops every entry. Ids keep increasing afterwards.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = b.entries[:0]
	b.pub.Publish(model.Event{Kind: model.EventLogCleared, Time: b.now()})
}

// Snapshot returns a copy of the entries, oldest first.
func (b *Buffer) Snapshot() []model.LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of stored entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Capacity returns the maximum number of stored entries.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// ExportText renders every entry as "[timestamp] LEVEL: message", one per
// line, oldest first. An empty buffer exports "".
func (b *Buffer) ExportText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var sb strings.Builder
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Line())
	}
	return sb.String()
}
