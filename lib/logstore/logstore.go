package logstore

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Capacity is the maximum number of lines kept per parser; the oldest line
// is evicted when a 21st one arrives.
const Capacity = 20

const timestampLayout = "2006-01-02 15:04:05"

// KnownParsers holds the canonical casing of every parser the real backend
// runs. Lookups are case-insensitive but responses always echo these.
var KnownParsers = []string{
	"Sale",
	"CurrencyInfo",
	"PackageIdPrice",
	"PackageIdSaleInfo",
	"BundleIdSaleInfo",
}

// Store keeps the accumulated log lines for each parser in memory. Nothing
// survives a restart, which is fine for a mock.
type Store struct {
	mu      sync.Mutex
	entries map[string][]string
	now     func() time.Time
}

func New() *Store {
	entries := make(map[string][]string, len(KnownParsers))
	for _, name := range KnownParsers {
		entries[name] = nil
	}
	return &Store{entries: entries, now: time.Now}
}

// Resolve matches raw against the known parser names ignoring case and
// returns the canonical casing. ok is false for names the backend does not
// know about.
func (s *Store) Resolve(raw string) (string, bool) {
	for _, name := range KnownParsers {
		if strings.EqualFold(name, raw) {
			return name, true
		}
	}
	return raw, false
}

// Append records a timestamped line for name, evicting the oldest line once
// the per-parser capacity is reached. Unknown names get their own bucket.
func (s *Store) Append(name, message string) {
	line := fmt.Sprintf("[%s] %s", s.now().Format(timestampLayout), message)

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := append(s.entries[name], line)
	if len(lines) > Capacity {
		lines = lines[len(lines)-Capacity:]
	}
	s.entries[name] = lines
}

// Lines returns a copy of the recorded lines for name, oldest first.
func (s *Store) Lines(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.entries[name]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Timestamp renders the current time the same way Append does, for the
// "no logs recorded yet" placeholder.
func (s *Store) Timestamp() string {
	return s.now().Format(timestampLayout)
}
