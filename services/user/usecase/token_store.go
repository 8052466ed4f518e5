package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

const (
	// resetTokenTTL is how long a password reset token stays valid.
	resetTokenTTL = time.Hour

	// resetTokenBytes is the entropy of a token value. The token string is
	// base64, roughly 4/3 times longer.
	resetTokenBytes = 24
)

// resetToken is one issued password reset grant.
type resetToken struct {
	userID    string
	email     string
	expiresAt time.Time
}

// tokenStore holds reset tokens in process memory. Tokens do not survive a
// restart and are consumed exactly once; expired entries are invalidated
// lazily on use, never swept. The store is only reachable through issue and
// consume.
type tokenStore struct {
	mu     sync.Mutex
	tokens map[string]resetToken
	ttl    time.Duration
	now    func() time.Time
}

func newTokenStore(ttl time.Duration) *tokenStore {
	return &tokenStore{
		tokens: make(map[string]resetToken),
		ttl:    ttl,
		now:    time.Now,
	}
}

// issue creates a new random URL-safe token bound to the user.
func (s *tokenStore) issue(userID, email string) (string, time.Time, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate reset token: %w", err)
	}
	value := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(s.ttl)
	s.tokens[value] = resetToken{userID: userID, email: email, expiresAt: expiresAt}
	return value, expiresAt, nil
}

// consume removes and returns the token entry. Unknown and expired tokens
// fail the same way so callers cannot distinguish the two.
func (s *tokenStore) consume(value string) (resetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[value]
	if !ok {
		return resetToken{}, apperrors.ErrInvalidOrExpiredToken
	}
	delete(s.tokens, value)

	if s.now().After(entry.expiresAt) {
		return resetToken{}, apperrors.ErrInvalidOrExpiredToken
	}
	return entry, nil
}
