// Package session manages the signed session cookie and the one-shot
// flash cookie. Session state lives entirely in the client cookie; the
// server keeps nothing between requests.
package session

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/zenathia/zenathia-web/internal/crypto"
	"github.com/zenathia/zenathia-web/internal/model"
)

const (
	sessionCookie = "zenathia_session"
	flashCookie   = "zenathia_flash"

	// SessionTTL bounds how long an issued session stays valid.
	SessionTTL = 24 * time.Hour
)

// Manager issues, reads, and clears session and flash cookies.
type Manager struct {
	secret string
	secure bool
}

// NewManager creates a Manager. secure controls the cookie Secure flag
// and should be true whenever the site is served over HTTPS.
func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: secret, secure: secure}
}

// Issue signs a session token for the user and sets the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, user model.SessionUser) error {
	token, err := crypto.NewSessionToken(user.ID, user.Name, m.secret, SessionTTL)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		Expires:  time.Now().Add(SessionTTL),
	})
	return nil
}

// Read reconstructs the session principal from the request cookie.
// A missing, expired, or tampered cookie reads as no session.
func (m *Manager) Read(r *http.Request) (model.SessionUser, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return model.SessionUser{}, false
	}

	claims, err := crypto.ParseSessionToken(c.Value, m.secret)
	if err != nil {
		return model.SessionUser{}, false
	}

	return model.SessionUser{ID: claims.UserID, Name: claims.Name}, true
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   -1,
	})
}

// Flash stores a one-shot message shown on the next rendered page.
// The value is base64-encoded because flash text contains characters
// that are not legal in cookie values.
func (m *Manager) Flash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}

// PopFlash returns the pending flash message, if any, and clears it so
// it is shown exactly once.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   -1,
	})

	msg, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return "", false
	}
	return string(msg), true
}
