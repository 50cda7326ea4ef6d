// Package auth decides whether a visitor may use the dashboard. The
// identity provider signs the credential; we only read its claims and
// check the email against a configured allow-list. Authorization is
// all-or-nothing per attempt.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nhle/study-dashboard/internal/model"
)

// sessionKey is the keyring slot holding the last-authenticated email.
const sessionKey = "user-email"

// NotAllowedError reports a credential that decoded cleanly but whose
// email is not on the allow-list.
type NotAllowedError struct {
	Email string
}

func (e *NotAllowedError) Error() string {
	return fmt.Sprintf("email %q is not authorized to access this dashboard", e.Email)
}

// SessionStore persists the authenticated email across runs.
type SessionStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Gate performs the authorization check and owns the persisted session.
type Gate struct {
	cfg      *model.AppConfig
	sessions SessionStore
}

// NewGate creates a gate backed by the system keyring.
func NewGate(cfg *model.AppConfig) *Gate {
	return &Gate{cfg: cfg, sessions: keyringStore{}}
}

// NewGateWithStore creates a gate with an explicit session store.
func NewGateWithStore(cfg *model.AppConfig, sessions SessionStore) *Gate {
	return &Gate{cfg: cfg, sessions: sessions}
}

// Authorize decodes the signed credential token, checks the email claim
// against the allow-list, and persists the session on success. The token
// signature is NOT verified here: trust in its validity is delegated to
// the identity provider that handed it to the user.
func (g *Gate) Authorize(token string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("decoding credential: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("credential carries no email claim")
	}

	if !g.cfg.Allowed(email) {
		return "", &NotAllowedError{Email: email}
	}

	// A failed write only costs the user a re-login next run.
	_ = g.sessions.Set(sessionKey, email)

	return email, nil
}

// Resume returns the persisted email when one exists and is still
// allow-listed; otherwise the caller shows the login view.
func (g *Gate) Resume() (string, bool) {
	email, err := g.sessions.Get(sessionKey)
	if err != nil || email == "" {
		return "", false
	}
	if !g.cfg.Allowed(email) {
		return "", false
	}
	return email, true
}

// SignOut clears the persisted session. The next start shows the login
// view.
func (g *Gate) SignOut() error {
	if err := g.sessions.Delete(sessionKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
