// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Kind: why a candidate word was rejected.
//   - ValidationError: displayable rejection (kind, title, message).
//   - Round: root word, used words (newest first) and score.
//   - Snapshot / Result: read-only views handed to the presentation layer.

package game

// Kind identifies a validation failure.
type Kind string

const (
	DuplicateWord      Kind = "duplicate_word"
	InfeasibleSpelling Kind = "infeasible_spelling"
	NotARealWord       Kind = "not_a_real_word"
	TooShort           Kind = "too_short"
)

// ValidationError describes why a candidate was rejected.
// Fresh per attempt; never stored on the round.
type ValidationError struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Title + ": " + e.Message }

// Is matches any ValidationError of the same kind, so
// errors.Is(err, ErrTooShort) works regardless of message text.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrDuplicateWord      = &ValidationError{Kind: DuplicateWord}
	ErrInfeasibleSpelling = &ValidationError{Kind: InfeasibleSpelling}
	ErrNotARealWord       = &ValidationError{Kind: NotARealWord}
	ErrTooShort           = &ValidationError{Kind: TooShort}
)

// Round holds the mutable state of one round.
type Round struct {
	Root  string   // Root word (lowercase, never empty once started).
	Used  []string // Accepted words, newest first.
	Score int      // Sum of accepted words' points.
}

// Mode selects how root words are chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Snapshot is a copy of a game's visible state.
type Snapshot struct {
	ID        string   `json:"id"`
	Mode      Mode     `json:"mode"`
	RootWord  string   `json:"rootWord"`
	UsedWords []string `json:"usedWords"`
	Score     int      `json:"score"`
	Rounds    int      `json:"rounds"`
}

// Result is the outcome of one submission.
type Result struct {
	Accepted  bool             `json:"accepted"`
	Ignored   bool             `json:"ignored,omitempty"` // blank input; nothing happened
	Word      string           `json:"word,omitempty"`
	Points    int              `json:"points,omitempty"`
	Rejection *ValidationError `json:"rejection,omitempty"`
}
