// Package lang maintains the flat "key = value" language file read by the
// game's localization loader.
package lang

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Entries is an insertion-ordered set of language entries. Setting an
// existing key updates its value and keeps its position.
type Entries struct {
	keys   []string
	values map[string]string
}

func NewEntries() *Entries {
	return &Entries{values: make(map[string]string)}
}

func (e *Entries) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

func (e *Entries) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

func (e *Entries) Len() int {
	return len(e.keys)
}

// Keys returns the keys in insertion order.
func (e *Entries) Keys() []string {
	return append([]string(nil), e.keys...)
}

// MergeLines applies entries to the lines of a language file. A key that
// already has a line is rewritten in place; new keys are appended in entry
// order. Blank lines, comments and unrelated keys are left untouched.
func MergeLines(lines []string, entries *Entries) []string {
	out := append([]string(nil), lines...)

	index := make(map[string]int)
	for i, line := range out {
		if !strings.Contains(line, "=") || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		key := strings.TrimSpace(strings.SplitN(line, "=", 2)[0])
		if key != "" {
			index[key] = i
		}
	}

	for _, key := range entries.keys {
		line := key + " = " + entries.values[key]
		if i, ok := index[key]; ok {
			out[i] = line
			continue
		}
		out = append(out, line)
	}
	return out
}

// Render merges entries into the file at path and returns the new contents.
// A missing file is treated as empty. ok is false when entries is empty, in
// which case the file must be left alone.
func Render(path string, entries *Entries) (data []byte, ok bool, err error) {
	if entries == nil || entries.Len() == 0 {
		return nil, false, nil
	}

	lines, err := readLines(path)
	if err != nil {
		return nil, false, err
	}

	merged := MergeLines(lines, entries)
	return []byte(strings.Join(merged, "\n") + "\n"), true, nil
}

func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read language file: %w", err)
	}

	text := strings.TrimSuffix(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
