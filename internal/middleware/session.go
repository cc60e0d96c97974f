package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

// SessionCookie is the name of the cookie that carries the session ID.
const SessionCookie = "office2md_session"

// Session middleware assigns each browser an opaque session ID and adds it
// to the request context. A new ID is minted (and the cookie set) when the
// request carries no cookie or a value that is not a well-formed UUID.
func Session(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				if id, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					sessionID = id.String()
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			r = httputil.WithSessionID(r, sessionID)
			next.ServeHTTP(w, r)
		})
	}
}
