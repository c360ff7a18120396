package advertise

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LogEntry is one recorded event during an advertise session.
type LogEntry struct {
	Frame    uint64
	Category string  // session, analyze, strategy, enemy, stop
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=00042] strategy  rotate           balanced → flanking
func (e LogEntry) String() string {
	return fmt.Sprintf("[F=%05d] %-9s %-16s %s",
		e.Frame, e.Category, e.Key, e.Value)
}

// SessionLog collects structured events during a session. Entries are
// unbounded and machine-readable; tests assert against them instead of
// scraping stdout. An optional writer receives each line as it is recorded.
type SessionLog struct {
	entries []LogEntry
	w       *bufio.Writer
}

// NewSessionLog creates a SessionLog. If w is non-nil, every entry is also
// written to it as a formatted line, flushed per line.
func NewSessionLog(w io.Writer) *SessionLog {
	sl := &SessionLog{}
	if w != nil {
		sl.w = bufio.NewWriter(w)
	}
	return sl
}

// Add records a new entry.
func (sl *SessionLog) Add(frame uint64, category, key, value string, numVal float64) {
	e := LogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	sl.entries = append(sl.entries, e)
	if sl.w != nil {
		sl.w.WriteString(e.String())
		sl.w.WriteByte('\n')
		sl.w.Flush()
	}
}

// Entries returns all recorded entries.
func (sl *SessionLog) Entries() []LogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SessionLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SessionLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SessionLog) LastOf(category, key string) (LogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value
// substring.
func (sl *SessionLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SessionLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
