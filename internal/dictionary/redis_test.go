package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis is an in-process stand-in for the set commands used by Redis.
type fakeRedis struct {
	sets    map[string]map[string]struct{}
	sadds   int
	lookErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{sets: make(map[string]map[string]struct{})}
}

func (f *fakeRedis) SIsMember(_ context.Context, key string, member interface{}) *redis.BoolCmd {
	if f.lookErr != nil {
		return redis.NewBoolResult(false, f.lookErr)
	}
	_, ok := f.sets[key][member.(string)]
	return redis.NewBoolResult(ok, nil)
}

func (f *fakeRedis) SAdd(_ context.Context, key string, members ...interface{}) *redis.IntCmd {
	f.sadds++
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]struct{})
		f.sets[key] = set
	}
	var added int64
	for _, m := range members {
		s := m.(string)
		if _, dup := set[s]; !dup {
			set[s] = struct{}{}
			added++
		}
	}
	return redis.NewIntResult(added, nil)
}

func (f *fakeRedis) SCard(_ context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(int64(len(f.sets[key])), nil)
}

func TestRedis_ImportAndLookup(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	rd := NewRedis(fake, "scramble")

	n, err := rd.Import(ctx, "EN", []string{"silk", "Worm", "", "silk"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, fake.sets, "scramble:dict:en")

	ok, err := rd.IsWordRecognized(ctx, "WORM", "en")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rd.IsWordRecognized(ctx, "milk", "en")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := rd.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRedis_ImportBatches(t *testing.T) {
	fake := newFakeRedis()
	rd := NewRedis(fake, "")
	list := make([]string, redisImportSize+1)
	for i := range list {
		list[i] = string(rune('a'+i%26)) + string(rune('a'+i/26%26)) + string(rune('a'+i/676))
	}
	_, err := rd.Import(context.Background(), "en", list)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.sadds)
}

func TestRedis_LookupError(t *testing.T) {
	fake := newFakeRedis()
	fake.lookErr = errors.New("connection refused")
	rd := NewRedis(fake, "")
	_, err := rd.IsWordRecognized(context.Background(), "silk", "en")
	assert.ErrorIs(t, err, fake.lookErr)
}
