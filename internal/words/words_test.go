package words

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	list, err := Load("")
	require.NoError(t, err)
	assert.Contains(t, list, "silkworm")
	for _, w := range list {
		assert.NotEmpty(t, w)
	}
}

func TestLoad_FileNormalizesAndSkipsBlanks(t *testing.T) {
	p := filepath.Join(t.TempDir(), "start.txt")
	require.NoError(t, os.WriteFile(p, []byte("  Silkworm \n\n# comment\nAIRPLANE\n"), 0o644))

	list, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"silkworm", "airplane"}, list)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestNewSource_Empty(t *testing.T) {
	_, err := NewSource(nil)
	assert.ErrorIs(t, err, ErrNoRootWords)
}

func TestPick_FromList(t *testing.T) {
	src, err := NewSource([]string{"silkworm", "airplane"})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Contains(t, []string{"silkworm", "airplane"}, src.Pick())
	}
	assert.Equal(t, 2, src.Len())
}

func TestPick_NilSourceFallsBack(t *testing.T) {
	var src *Source
	assert.Equal(t, DefaultRoot, src.Pick())
	assert.Equal(t, 0, src.Len())
}

func TestDaily_Deterministic(t *testing.T) {
	roots := []string{"silkworm", "airplane", "alphabet", "blackout"}
	src, err := NewSource(roots)
	require.NoError(t, err)

	day := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)

	i1, w1 := src.Daily(day, "salt")
	i2, w2 := src.Daily(later, "salt")
	assert.Equal(t, i1, i2)
	assert.Equal(t, w1, w2)
	assert.Equal(t, roots[i1], w1)
	assert.Equal(t, DailyIndex(day, "salt", len(roots)), i1)
	assert.Equal(t, "2026-10-16", DateKey(day))
	assert.Equal(t, 0, DailyIndex(day, "salt", 0))
}
