package game

import (
	"fmt"
	"strings"
)

type message struct {
	title  string
	format string // may contain one %s for the root word
}

var messages = map[Kind]message{
	DuplicateWord:      {"Word used already", "Be more original"},
	InfeasibleSpelling: {"Word not possible", "You can't spell that word from '%s'!"},
	NotARealWord:       {"Word not recognized", "You can't just make them up, you know!"},
	TooShort:           {"Word too short", "Words must be longer than two letters"},
}

// Describe builds the displayable error for kind in a round on root.
func Describe(kind Kind, root string) *ValidationError {
	m, ok := messages[kind]
	if !ok {
		return &ValidationError{Kind: kind, Title: "Invalid word", Message: string(kind)}
	}
	msg := m.format
	if strings.Contains(msg, "%s") {
		msg = fmt.Sprintf(m.format, root)
	}
	return &ValidationError{Kind: kind, Title: m.title, Message: msg}
}
