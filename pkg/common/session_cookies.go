package common

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matst80/slask-inventory/pkg/types"
)

const sessionCookie = "sid"

func generateSessionId() int {
	return int(time.Now().UnixNano())
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    strconv.Itoa(sessionId),
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		Path:     "/",
	})
}

// HandleSessionCookie returns the session id from the sid cookie, issuing a
// new one when it is missing or broken. New sessions are tracked.
func HandleSessionCookie(tracking types.Tracking, w http.ResponseWriter, r *http.Request) int {
	c, err := r.Cookie(sessionCookie)
	if err == nil {
		if sessionId, err := strconv.Atoi(c.Value); err == nil {
			return sessionId
		}
	}
	sessionId := generateSessionId()
	if tracking != nil {
		go tracking.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
