// internal/dictionary/dictionary.go
//
// Spelling oracle used by the validation pipeline to decide whether a
// candidate is a real word.
//
// Backends:
//   - WordList: in-memory sets per locale (embedded default or a file).
//   - SQLite:   dictionary_words table (sqlite.go).
//   - Redis:    one set per locale (redis.go).
//   - Chain:    first backend that recognizes the word wins; Open uses it
//               to back sqlite/redis with the in-memory list.
//
// Words and locales are compared lowercase.

package dictionary

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/scramble/apps/go-server/assets"
)

// DefaultLocale is used when a lookup passes an empty locale.
const DefaultLocale = "en"

// Dictionary reports whether word is spelled correctly for locale.
type Dictionary interface {
	IsWordRecognized(ctx context.Context, word, locale string) (bool, error)
}

// Func adapts a plain function to Dictionary.
type Func func(ctx context.Context, word, locale string) (bool, error)

// IsWordRecognized calls f.
func (f Func) IsWordRecognized(ctx context.Context, word, locale string) (bool, error) {
	return f(ctx, word, locale)
}

// Chain consults each dictionary in order.
type Chain []Dictionary

// IsWordRecognized returns true on the first backend that knows word.
// A failing backend is skipped; its error is returned only when no later
// backend recognizes the word.
func (c Chain) IsWordRecognized(ctx context.Context, word, locale string) (bool, error) {
	var firstErr error
	for _, d := range c {
		ok, err := d.IsWordRecognized(ctx, word, locale)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			return true, nil
		}
	}
	return false, firstErr
}

// normalizeLocale lowercases loc and defaults it to DefaultLocale.
func normalizeLocale(loc string) string {
	loc = strings.ToLower(strings.TrimSpace(loc))
	if loc == "" {
		return DefaultLocale
	}
	return loc
}

// WordList is an in-memory dictionary. Safe for concurrent use.
type WordList struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{} // locale → words
}

// NewWordList returns an empty WordList.
func NewWordList() *WordList {
	return &WordList{sets: make(map[string]map[string]struct{})}
}

// LoadWordList reads path (or the embedded English list when path is empty)
// into a WordList under locale.
func LoadWordList(path, locale string) (*WordList, error) {
	list, err := ReadWords(path)
	if err != nil {
		return nil, err
	}
	wl := NewWordList()
	wl.Add(locale, list...)
	return wl, nil
}

// ReadWords reads a one-word-per-line file, or the embedded list when path is empty.
func ReadWords(path string) ([]string, error) {
	if path == "" {
		return assets.DictionaryWords()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Add inserts words under locale.
func (w *WordList) Add(locale string, words ...string) {
	locale = normalizeLocale(locale)
	w.mu.Lock()
	defer w.mu.Unlock()
	set, ok := w.sets[locale]
	if !ok {
		set = make(map[string]struct{}, len(words))
		w.sets[locale] = set
	}
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			set[word] = struct{}{}
		}
	}
}

// Words returns a copy of the words stored under locale.
func (w *WordList) Words(locale string) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	set := w.sets[normalizeLocale(locale)]
	out := make([]string, 0, len(set))
	for word := range set {
		out = append(out, word)
	}
	return out
}

// Len reports the number of words stored under locale.
func (w *WordList) Len(locale string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.sets[normalizeLocale(locale)])
}

// IsWordRecognized never returns an error.
func (w *WordList) IsWordRecognized(_ context.Context, word, locale string) (bool, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.sets[normalizeLocale(locale)][strings.ToLower(word)]
	return ok, nil
}
