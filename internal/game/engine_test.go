package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/scramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/scramble/apps/go-server/internal/words"
)

func newSource(t *testing.T, list ...string) *words.Source {
	t.Helper()
	src, err := words.NewSource(list)
	require.NoError(t, err)
	return src
}

func newSilkworm(t *testing.T, dict *MockDictionary) *Game {
	t.Helper()
	return New(Options{
		Words:      newSource(t, "silkworm"),
		Dictionary: dict,
		Root:       "silkworm",
	})
}

func TestNew_StartsRound(t *testing.T) {
	g := newSilkworm(t, acceptAll())
	s := g.Snapshot()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, ModeRandom, s.Mode)
	assert.Equal(t, "silkworm", s.RootWord)
	assert.Empty(t, s.UsedWords)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Rounds)
}

func TestSubmit_AcceptsSilk(t *testing.T) {
	g := newSilkworm(t, acceptAll())

	res, err := g.Submit(context.Background(), "silk")
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "silk", res.Word)
	assert.Equal(t, 4, res.Points)

	s := g.Snapshot()
	assert.Equal(t, []string{"silk"}, s.UsedWords)
	assert.Equal(t, 4, s.Score)
}

func TestSubmit_NewestFirstAndScoreSum(t *testing.T) {
	g := newSilkworm(t, acceptAll())
	ctx := context.Background()

	for _, w := range []string{"silk", "worm", "milks"} {
		res, err := g.Submit(ctx, w)
		require.NoError(t, err)
		require.True(t, res.Accepted, w)
	}
	s := g.Snapshot()
	assert.Equal(t, []string{"milks", "worm", "silk"}, s.UsedWords)
	assert.Equal(t, 4+4+5, s.Score)
}

func TestSubmit_Rejections(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"silkworm", DuplicateWord},
		{"sssk", InfeasibleSpelling},
		{"is", TooShort},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			g := newSilkworm(t, acceptAll())
			before := g.Snapshot()

			res, err := g.Submit(context.Background(), tc.input)
			require.NoError(t, err)
			require.NotNil(t, res.Rejection)
			assert.Equal(t, tc.kind, res.Rejection.Kind)
			assert.False(t, res.Accepted)
			assert.Equal(t, before, g.Snapshot())
		})
	}
}

func TestSubmit_RejectionIsRepeatable(t *testing.T) {
	dict := &MockDictionary{}
	dict.On("IsWordRecognized", mock.Anything, "slim", "en").Return(false, nil)
	g := newSilkworm(t, dict)
	ctx := context.Background()

	first, err := g.Submit(ctx, "slim")
	require.NoError(t, err)
	second, err := g.Submit(ctx, "slim")
	require.NoError(t, err)
	assert.Equal(t, NotARealWord, first.Rejection.Kind)
	assert.Equal(t, first.Rejection.Kind, second.Rejection.Kind)
}

func TestSubmit_DuplicateAfterAccept(t *testing.T) {
	g := newSilkworm(t, acceptAll())
	ctx := context.Background()

	_, err := g.Submit(ctx, "silk")
	require.NoError(t, err)
	res, err := g.Submit(ctx, " SILK ")
	require.NoError(t, err)
	assert.Equal(t, DuplicateWord, res.Rejection.Kind)
	assert.Equal(t, 4, g.Snapshot().Score)
}

func TestSubmit_BlankIgnored(t *testing.T) {
	g := newSilkworm(t, acceptAll())
	before := g.Snapshot()

	res, err := g.Submit(context.Background(), "   ")
	require.NoError(t, err)
	assert.True(t, res.Ignored)
	assert.Nil(t, res.Rejection)
	assert.Equal(t, before, g.Snapshot())
}

func TestSubmit_DictionaryErrorLeavesState(t *testing.T) {
	dict := &MockDictionary{}
	dict.On("IsWordRecognized", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("down"))
	g := newSilkworm(t, dict)

	_, err := g.Submit(context.Background(), "silk")
	assert.Error(t, err)
	assert.Empty(t, g.Snapshot().UsedWords)
}

func TestSubmit_PassesLocale(t *testing.T) {
	dict := &MockDictionary{}
	dict.On("IsWordRecognized", mock.Anything, "silk", "fr").Return(true, nil)
	g := New(Options{Words: newSource(t, "silkworm"), Dictionary: dict, Root: "silkworm", Locale: "fr"})

	res, err := g.Submit(context.Background(), "silk")
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	dict.AssertExpectations(t)
}

func TestSubmit_RawScoring(t *testing.T) {
	g := New(Options{
		Words:      newSource(t, "silkworm"),
		Dictionary: acceptAll(),
		Root:       "silkworm",
		Score:      ScoreRuleFor("raw"),
	})

	res, err := g.Submit(context.Background(), " Silk  ")
	require.NoError(t, err)
	assert.Equal(t, "silk", res.Word)
	assert.Equal(t, 7, res.Points)
	assert.Equal(t, 7, g.Snapshot().Score)
}

func TestRestart_Resets(t *testing.T) {
	g := New(Options{
		Words:      newSource(t, "airplane"),
		Dictionary: acceptAll(),
		Root:       "silkworm",
	})
	ctx := context.Background()
	_, err := g.Submit(ctx, "silk")
	require.NoError(t, err)

	s := g.Restart()
	assert.Equal(t, "airplane", s.RootWord)
	assert.Empty(t, s.UsedWords)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 2, s.Rounds)

	// restart on a fresh game behaves the same
	s = New(Options{Words: newSource(t, "airplane"), Dictionary: acceptAll()}).Restart()
	assert.Empty(t, s.UsedWords)
	assert.Equal(t, 0, s.Score)
}

func TestDailyMode_StableRoot(t *testing.T) {
	src := newSource(t, "silkworm", "airplane", "alphabet", "blackout")
	now := func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	_, want := src.Daily(now(), "salt")

	g := New(Options{Words: src, Dictionary: acceptAll(), Mode: ModeDaily, DailySalt: "salt", Now: now})
	assert.Equal(t, want, g.Snapshot().RootWord)
	assert.Equal(t, want, g.Restart().RootWord)
	assert.Equal(t, ModeDaily, g.Snapshot().Mode)
}

func TestAcceptedWordsInvariant(t *testing.T) {
	g := newSilkworm(t, acceptAll())
	ctx := context.Background()
	for _, in := range []string{"silk", "Worm", "sssk", "is", "silkworm", "  ", "milk", "silk", "owl", "zzz"} {
		_, err := g.Submit(ctx, in)
		require.NoError(t, err)
	}

	s := g.Snapshot()
	sum := 0
	seen := map[string]bool{}
	for _, w := range s.UsedWords {
		assert.Equal(t, Normalize(w), w)
		assert.True(t, IsLongEnough(w))
		assert.True(t, IsPossible(w, s.RootWord))
		assert.NotEqual(t, s.RootWord, w)
		assert.False(t, seen[w])
		seen[w] = true
		sum += len([]rune(w))
	}
	assert.Equal(t, sum, s.Score)
	assert.Equal(t, []string{"owl", "milk", "worm", "silk"}, s.UsedWords)
}

func TestSubmit_EmbeddedDictionary(t *testing.T) {
	ctx := context.Background()
	h, err := dictionary.Open(ctx, dictionary.Options{Locale: "en"})
	require.NoError(t, err)
	defer h.Close()

	g := New(Options{Words: newSource(t, "treasure"), Dictionary: h, Locale: "en", Root: "treasure"})
	for _, w := range []string{"rest", "seat", "east", "tree", "true", "star", "tear", "eaters"} {
		res, err := g.Submit(ctx, w)
		require.NoError(t, err)
		require.Nil(t, res.Rejection, w)
		assert.True(t, res.Accepted, w)
	}
	assert.Equal(t, 4*7+6, g.Snapshot().Score)

	res, err := g.Submit(ctx, "tsrae")
	require.NoError(t, err)
	require.NotNil(t, res.Rejection)
	assert.Equal(t, NotARealWord, res.Rejection.Kind)
}
