package game

import "unicode/utf8"

// ScoreRule returns the points for an accepted word.
// word is the normalized word, raw the text exactly as submitted.
type ScoreRule func(word, raw string) int

// ScoreNormalized awards the letter count of the accepted word.
func ScoreNormalized(word, _ string) int { return utf8.RuneCountInString(word) }

// ScoreRaw awards the character count of the raw submission, surrounding
// whitespace and all.
func ScoreRaw(_, raw string) int { return utf8.RuneCountInString(raw) }

// ScoreRuleFor maps a config value to a rule; unknown values get ScoreNormalized.
func ScoreRuleFor(mode string) ScoreRule {
	if mode == "raw" {
		return ScoreRaw
	}
	return ScoreNormalized
}

// Start resets r to a fresh round on root.
func (r *Round) Start(root string) {
	r.Root = root
	r.Used = []string{}
	r.Score = 0
}

// Accept records a validated word at the front of Used and adds points.
func (r *Round) Accept(word string, points int) {
	r.Used = append([]string{word}, r.Used...)
	r.Score += points
}
