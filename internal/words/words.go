// internal/words/words.go
//
// Root word source for the game.
//
// Responsibilities:
//   - Load the root word list from an environment-provided file or fall back to
//     the embedded `start.txt`.
//   - Pick a root word uniformly at random for each round.
//
// File format:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Words are trimmed and lowercased.
//
// Policy:
//   A missing/unreadable file or an empty list is a startup error (ErrNoRootWords);
//   the caller is expected to abort. DefaultRoot is only used by Pick when it is
//   called on a nil or empty Source.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/robalobadob/scramble/apps/go-server/assets"
)

// DefaultRoot is returned by Pick when no root words are loaded.
const DefaultRoot = "silkworm"

// ErrNoRootWords is returned when the root word list is empty.
var ErrNoRootWords = errors.New("words: root word list is empty")

// Source holds the loaded root words.
type Source struct {
	roots []string
}

// Load reads root words from path, or from the embedded list when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return assets.RootWords()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open root words %s: %w", path, err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// NewSource builds a Source. Returns ErrNoRootWords if list is empty.
func NewSource(list []string) (*Source, error) {
	if len(list) == 0 {
		return nil, ErrNoRootWords
	}
	return &Source{roots: append([]string(nil), list...)}, nil
}

// Pick returns a cryptographically random root word.
func (s *Source) Pick() string {
	if s == nil || len(s.roots) == 0 {
		return DefaultRoot
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.roots))))
	if err != nil {
		return s.roots[0]
	}
	return s.roots[n.Int64()]
}

// Len reports the number of loaded root words.
func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return len(s.roots)
}
