// Package token implements the email-verification token scheme: a
// deterministic, time-limited HMAC binding a user's primary key and current
// verification state to an issuance timestamp under a server-side secret.
// Flipping the verification flag invalidates every token issued before it.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pulsecure/accounts-api/internal/core/domain"
)

// Signer issues and verifies verification tokens.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner creates a Signer with the given secret and expiry window.
// If ttl <= 0, a 24h window is used.
func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

// Issue produces an opaque token of the form "<ts36>-<mac>" where ts36 is the
// issuance unix timestamp in base 36 and mac is an HMAC-SHA256 over the
// user's id, verification flag and timestamp.
func (s *Signer) Issue(u *domain.User) string {
	ts := s.now().UTC().Unix()
	return strconv.FormatInt(ts, 36) + "-" + s.mac(u, ts)
}

// Verify reports whether token is authentic for the user's current state and
// still within the expiry window. It fails closed: malformed input of any
// kind returns false, never an error.
func (s *Signer) Verify(u *domain.User, token string) bool {
	if u == nil {
		return false
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	ts, err := strconv.ParseInt(parts[0], 36, 64)
	if err != nil || ts <= 0 {
		return false
	}

	if !hmac.Equal([]byte(parts[1]), []byte(s.mac(u, ts))) {
		return false
	}

	age := s.now().UTC().Sub(time.Unix(ts, 0))
	return age >= 0 && age <= s.ttl
}

func (s *Signer) mac(u *domain.User, ts int64) string {
	h := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(h, "%s:%t:%d", u.ID, u.EmailVerified, ts)
	return hex.EncodeToString(h.Sum(nil))
}

// EncodeUID encodes a user's primary key for inclusion in a verification
// link. The encoding is reversible and URL-safe; it is not a secret.
func EncodeUID(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// DecodeUID reverses EncodeUID. Callers must treat any error as an invalid
// verification link, indistinguishable from a bad token.
func DecodeUID(s string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		// Tolerate padded input from older links.
		b, err = base64.URLEncoding.DecodeString(s)
		if err != nil {
			return "", fmt.Errorf("decode uid: %w", err)
		}
	}
	if len(b) == 0 {
		return "", fmt.Errorf("decode uid: empty payload")
	}
	return string(b), nil
}
