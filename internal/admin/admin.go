// Package admin implements the shared-secret gate in front of operator
// commands. This is advisory access control for classroom use, not an
// authorization system: one plaintext secret shared out of band, no
// accounts, no audit trail.
package admin

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/classhub/internal/session"
)

type Gate struct {
	secret []byte
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Enabled reports whether a secret is configured at all.
func (g *Gate) Enabled() bool {
	return len(g.secret) > 0
}

// Unlock compares the candidate in constant time and flips the session's
// admin flag on success. An unset secret always denies.
func (g *Gate) Unlock(sess *session.Session, candidate string) bool {
	if !g.Enabled() {
		return false
	}
	if subtle.ConstantTimeCompare(g.secret, []byte(candidate)) != 1 {
		return false
	}
	sess.UnlockAdmin()
	return true
}
