package model

import (
	"time"

	"github.com/google/uuid"
)

// Session records the bearer token for a logged-in account together with its
// expiry. At most one row exists per account.
type Session struct {
	ID        int       `json:"id"`
	AccountID int       `json:"account_id"`
	Token     uuid.UUID `json:"-"`
	Expires   time.Time `json:"expires"`
}

// ActiveAt reports whether the session is still usable at the given instant.
// A session expiring exactly at now counts as expired.
func (s *Session) ActiveAt(now time.Time) bool {
	return s.Expires.After(now)
}
