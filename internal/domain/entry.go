package domain

import (
	"fmt"
	"io"
	"strings"
)

// ConfigEntry is one key:value line of the tunables file.
type ConfigEntry struct {
	Key      string
	RawValue string
}

// LineError describes a tunables line that was skipped during parsing.
type LineError struct {
	Line int // 1-based line number
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// MatchMode selects how GetValue compares a requested key to entry keys.
type MatchMode int

const (
	// MatchContains matches the first entry whose key contains the requested key.
	MatchContains MatchMode = iota
	// MatchExact matches only entries whose key equals the requested key.
	MatchExact
)

// ParseMatchMode maps "contains" or "exact" to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "contains":
		return MatchContains, nil
	case "exact":
		return MatchExact, nil
	default:
		return MatchContains, fmt.Errorf("unknown key match mode %q", s)
	}
}

func (m MatchMode) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "contains"
}

// ParseEntries reads key:value lines from r. Lines without a colon or with an
// empty key are skipped and returned as LineErrors; blank and "#" comment
// lines are skipped silently. Lines have no length limit. A read error stops
// parsing and is returned.
func ParseEntries(r io.Reader) ([]ConfigEntry, []LineError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read tunables: %w", err)
	}

	var (
		entries []ConfigEntry
		skipped []LineError
	)
	for i, line := range strings.Split(string(data), "\n") {
		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		entry, ok := parseLine(text)
		if !ok {
			skipped = append(skipped, LineError{Line: i + 1, Text: text, Err: ErrLineMalformed})
			continue
		}
		entries = append(entries, entry)
	}

	return entries, skipped, nil
}

// parseLine splits a line on its first colon.
func parseLine(text string) (ConfigEntry, bool) {
	key, value, found := strings.Cut(text, ":")
	if !found {
		return ConfigEntry{}, false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ConfigEntry{}, false
	}
	return ConfigEntry{Key: key, RawValue: strings.TrimSpace(value)}, true
}

// GetValue returns the raw value of the first entry matching key.
func GetValue(entries []ConfigEntry, key string, mode MatchMode) (string, bool) {
	for _, e := range entries {
		if mode.Matches(e.Key, key) {
			return e.RawValue, true
		}
	}
	return "", false
}

// Matches reports whether an entry key resolves the requested key.
func (m MatchMode) Matches(entryKey, key string) bool {
	if m == MatchExact {
		return entryKey == key
	}
	return strings.Contains(entryKey, key)
}
