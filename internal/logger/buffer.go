// internal/logger/buffer.go
package logger

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// LogEntry is one decoded log line held by the buffer.
type LogEntry struct {
	Timestamp time.Time `json:"time"`
	Level     string    `json:"level"`
	Message   string    `json:"msg"`
	Raw       string    `json:"-"`
}

// LogBuffer is a thread-safe ring buffer the TUI log pane reads from. It
// implements io.Writer so a zap core can sink into it directly.
type LogBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
	next    int
	wrapped bool
	total   uint64
}

// NewLogBuffer creates a buffer that retains the last maxSize entries.
func NewLogBuffer(maxSize int) *LogBuffer {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &LogBuffer{entries: make([]LogEntry, maxSize)}
}

// Write decodes one or more JSON log lines and appends them to the ring.
// Lines that do not parse are kept verbatim so nothing is lost.
func (lb *LogBuffer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		entry := LogEntry{Raw: line, Timestamp: time.Now()}
		_ = json.Unmarshal([]byte(line), &entry)
		lb.add(entry)
	}
	return len(p), nil
}

func (lb *LogBuffer) add(entry LogEntry) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries[lb.next] = entry
	lb.next = (lb.next + 1) % len(lb.entries)
	if lb.next == 0 && lb.total > 0 {
		lb.wrapped = true
	}
	lb.total++
}

// Recent returns up to limit entries, oldest first.
func (lb *LogBuffer) Recent(limit int) []LogEntry {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	count := lb.next
	start := 0
	if lb.wrapped {
		count = len(lb.entries)
		start = lb.next
	}

	logs := make([]LogEntry, 0, count)
	for i := 0; i < count; i++ {
		logs = append(logs, lb.entries[(start+i)%len(lb.entries)])
	}

	if limit > 0 && limit < len(logs) {
		logs = logs[len(logs)-limit:]
	}
	return logs
}

// Len reports how many entries are currently retained.
func (lb *LogBuffer) Len() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.wrapped {
		return len(lb.entries)
	}
	return lb.next
}

// Total reports how many entries were ever written.
func (lb *LogBuffer) Total() uint64 {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.total
}
