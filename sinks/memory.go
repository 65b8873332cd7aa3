package sinks

import (
	"sync"

	"github.com/Station-Manager/logcontent"
)

// Entry is one line captured by Memory.
type Entry struct {
	Level   logcontent.Level
	Message string
}

// Memory records every line it receives. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

var _ logcontent.Sink = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Log(level logcontent.Level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of everything recorded so far.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Reset drops everything recorded so far.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
