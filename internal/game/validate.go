// internal/game/validate.go
//
// Validation pipeline for candidate words.
//
// Checks run in a fixed order and the first failure wins:
//  1. normalize (lowercase + trim); blank input is a silent no-op
//  2. originality      → DuplicateWord
//  3. feasibility      → InfeasibleSpelling
//  4. dictionary       → NotARealWord
//  5. minimum length   → TooShort

package game

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/scramble/apps/go-server/internal/dictionary"
)

// MinLength is the shortest accepted word, in letters.
const MinLength = 3

// Normalize lowercases and trims a candidate.
func Normalize(candidate string) string {
	return strings.ToLower(strings.TrimSpace(candidate))
}

// IsOriginal reports whether word is neither the root word nor already used.
func IsOriginal(word, root string, used []string) bool {
	return word != root && !slices.Contains(used, word)
}

// IsPossible reports whether word can be spelled from root's letters,
// using each letter of root at most as many times as it occurs there.
func IsPossible(word, root string) bool {
	pool := []rune(root)
	for _, r := range word {
		i := slices.Index(pool, r)
		if i < 0 {
			return false
		}
		pool = slices.Delete(pool, i, i+1)
	}
	return true
}

// IsLongEnough reports whether word has at least MinLength letters.
func IsLongEnough(word string) bool {
	return utf8.RuneCountInString(word) >= MinLength
}

// Validate runs the pipeline for candidate against r.
//
// Returns:
//   - ("", nil) when candidate is blank after normalization.
//   - ("", *ValidationError) when a check rejects the word.
//   - ("", err) when the dictionary lookup itself fails.
//   - (word, nil) with the normalized word on success.
func (r *Round) Validate(ctx context.Context, candidate string, dict dictionary.Dictionary, locale string) (string, error) {
	word := Normalize(candidate)
	if word == "" {
		return "", nil
	}
	if !IsOriginal(word, r.Root, r.Used) {
		return "", Describe(DuplicateWord, r.Root)
	}
	if !IsPossible(word, r.Root) {
		return "", Describe(InfeasibleSpelling, r.Root)
	}
	ok, err := dict.IsWordRecognized(ctx, word, locale)
	if err != nil {
		return "", fmt.Errorf("dictionary lookup %q: %w", word, err)
	}
	if !ok {
		return "", Describe(NotARealWord, r.Root)
	}
	if !IsLongEnough(word) {
		return "", Describe(TooShort, r.Root)
	}
	return word, nil
}
