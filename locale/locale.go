// Package locale loads duration label tables and message templates from a
// directory of JSON files, one file per locale. It is file-I/O glue around
// the duration package: tables are handed to duration.NewFormatter as-is.
package locale

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lucrnz/humanspan/duration"
)

var logger = slog.Default()

// SetLogger overrides the package logger (useful for CLI configured logging).
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// localeFile is the on-disk shape of one locale, e.g. es.json:
//
//	{
//	  "units": {
//	    "day": {"default": "días", "compact": "d", "overrides": {"1": "día"}}
//	  },
//	  "messages": {"result": "{text} = {value}"}
//	}
type localeFile struct {
	Units    map[string]labelEntry `json:"units"`
	Messages map[string]string     `json:"messages"`
}

type labelEntry struct {
	Default   string            `json:"default"`
	Compact   string            `json:"compact"`
	Overrides map[string]string `json:"overrides"`
}

// Loader scans a directory for *.json locale files. The lower-cased file
// stem is the locale code: en-GB.json defines "en-gb". Tables are held
// behind a lock so a polling reload can swap them while readers render.
type Loader struct {
	dir string

	mu       sync.RWMutex
	tables   map[string]duration.LabelTable
	messages map[string]map[string]string
	modTimes map[string]time.Time
}

// NewLoader creates a loader for dir. Nothing is read until Load.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load scans the directory and replaces every held table. A malformed
// locale file fails the whole load and leaves the previous tables intact.
func (l *Loader) Load() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("scanning locale dir: %w", err)
	}

	tables := make(map[string]duration.LabelTable)
	messages := make(map[string]map[string]string)
	modTimes := make(map[string]time.Time)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(l.dir, e.Name())
		code := strings.ToLower(strings.TrimSuffix(e.Name(), ".json"))

		table, msgs, err := loadFile(path)
		if err != nil {
			return fmt.Errorf("locale %q: %w", code, err)
		}
		tables[code] = table
		messages[code] = msgs
		if info, err := e.Info(); err == nil {
			modTimes[e.Name()] = info.ModTime()
		}
		logger.Debug("locale loaded", "code", code, "units", len(table))
	}

	l.mu.Lock()
	l.tables = tables
	l.messages = messages
	l.modTimes = modTimes
	l.mu.Unlock()
	return nil
}

func loadFile(path string) (duration.LabelTable, map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var lf localeFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, nil, err
	}

	table := make(duration.LabelTable, len(lf.Units))
	for name, entry := range lf.Units {
		unit, ok := duration.UnitByName(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown unit %q", name)
		}
		label := duration.Label{Default: entry.Default, Compact: entry.Compact}
		if len(entry.Overrides) > 0 {
			label.Overrides = make(map[int64]string, len(entry.Overrides))
			for count, form := range entry.Overrides {
				n, err := strconv.ParseInt(count, 10, 64)
				if err != nil {
					return nil, nil, fmt.Errorf("unit %q: override key %q is not an integer", name, count)
				}
				label.Overrides[n] = form
			}
		}
		table[unit] = label
	}
	return table, lf.Messages, nil
}

// Locales returns the loaded locale codes, sorted.
func (l *Loader) Locales() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	codes := make([]string, 0, len(l.tables))
	for code := range l.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Table returns a copy of the label table for code.
func (l *Loader) Table(code string) (duration.LabelTable, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	table, ok := l.tables[strings.ToLower(code)]
	if !ok {
		return nil, false
	}
	out := make(duration.LabelTable, len(table))
	for u, label := range table {
		out[u] = label
	}
	return out, true
}

// Message looks up a message template for code and substitutes vars.
func (l *Loader) Message(code, key string, vars map[string]string) (string, bool) {
	l.mu.RLock()
	template, ok := l.messages[strings.ToLower(code)][key]
	l.mu.RUnlock()
	if !ok {
		return "", false
	}
	return Substitute(template, vars), true
}

// Substitute replaces each {name} placeholder with its value from vars.
// Placeholders without a value are left as-is.
func Substitute(template string, vars map[string]string) string {
	out := template
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// Watch polls the directory at the given interval and reloads when any
// locale file is added, removed or rewritten. It returns when ctx is done.
func (l *Loader) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !l.changed() {
				continue
			}
			if err := l.Load(); err != nil {
				logger.Warn("locale reload failed", "dir", l.dir, "error", err)
				continue
			}
			logger.Info("locale tables reloaded", "dir", l.dir)
		}
	}
}

func (l *Loader) changed() bool {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	seen := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		seen++
		info, err := e.Info()
		if err != nil {
			// A file we can no longer stat counts as changed; the reload
			// will surface the real problem.
			return true
		}
		prev, ok := l.modTimes[e.Name()]
		if !ok || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return seen != len(l.modTimes)
}
