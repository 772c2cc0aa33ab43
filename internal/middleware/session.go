package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/google/uuid"
)

const SessionCookie = "checkout_sid"

const sessionMaxAge = 30 * 24 * time.Hour

type sessionKey struct{}

func WithSession(ctx context.Context, s entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by the Session middleware, or the zero value.
func SessionFrom(ctx context.Context) entities.Session {
	s, _ := ctx.Value(sessionKey{}).(entities.Session)
	return s
}

// Session binds every request to a checkout session. The key lives in a
// cookie and is reissued when it is missing or malformed.
func Session(secure bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ""
			if c, err := r.Cookie(SessionCookie); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					key = id.String()
				}
			}
			if key == "" {
				key = uuid.NewString()
				sessionsIssued.Inc()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    key,
					Path:     "/",
					MaxAge:   int(sessionMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			s := SessionFrom(r.Context())
			s.Key = key
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}
