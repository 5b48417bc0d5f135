package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Daily returns the root word for the day of t.
func (s *Source) Daily(t time.Time, salt string) (int, string) {
	if s.Len() == 0 {
		return 0, DefaultRoot
	}
	i := DailyIndex(t, salt, len(s.roots))
	return i, s.roots[i]
}
