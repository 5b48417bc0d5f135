package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const gameCookieName = "scramble_game"

var errTokenInvalid = errors.New("invalid game token")

// tokenSigner issues HS256 tokens that bind a client to one game ID.
type tokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func newTokenSigner(secret string, ttl time.Duration) *tokenSigner {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokenSigner{secret: []byte(secret), ttl: ttl}
}

// sign returns a token for gameID and its expiry.
func (t *tokenSigner) sign(gameID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   gameID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// verify returns the game ID carried by a valid token.
func (t *tokenSigner) verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", errTokenInvalid
	}
	return claims.Subject, nil
}

// setGameCookie stores the token for browser clients.
func setGameCookie(w http.ResponseWriter, token string, exp time.Time, secure bool) {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     gameCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or the game cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(gameCookieName); err == nil {
		return c.Value
	}
	return ""
}
