// internal/infra/web/cookies.go
package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// sessionCookieName is the canonical login session cookie.
const sessionCookieName = "shift_session"

// flashCookieName carries one-time notices across redirects.
const flashCookieName = "shift_flash"

// flashNotice is a one-time message shown on the next rendered page.
type flashNotice struct {
	Kind string `json:"kind"` // "success" or "error"
	Text string `json:"text"`
}

func readSessionCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func writeSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func writeFlash(w http.ResponseWriter, kind, text string) {
	payload, err := json.Marshal(flashNotice{Kind: kind, Text: text})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// readAndClearFlash pops the pending notice, if any.
func readAndClearFlash(w http.ResponseWriter, r *http.Request) *flashNotice {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie == nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	notice := &flashNotice{}
	if err := json.Unmarshal(payload, notice); err != nil {
		return nil
	}
	return notice
}
