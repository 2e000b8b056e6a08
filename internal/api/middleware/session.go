package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"quiz_admin_console/internal/common/security"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/config"
	"quiz_admin_console/internal/platform/session"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const SessionCtxKey contextKey = "session"

// routeGate is the single declarative map from route prefix to required
// role; every protected navigation is checked here instead of per page.
var routeGate = []struct {
	Prefix string
	Role   string
}{
	{"/dashboard", model.RoleAdmin},
	{"/users", model.RoleAdmin},
	{"/quizzes", model.RoleAdmin},
	{"/transactions", model.RoleAdmin},
	{"/notifications", model.RoleAdmin},
	{"/analytics", model.RoleAdmin},
	{"/settings", model.RoleAdmin},
}

// RequiredRole resolves the role a path demands, if any.
func RequiredRole(path string) (string, bool) {
	for _, g := range routeGate {
		if path == g.Prefix || strings.HasPrefix(path, g.Prefix+"/") {
			return g.Role, true
		}
	}
	return "", false
}

// TokenFromSessionCookie feeds the session cookie to the jwtauth verifier.
func TokenFromSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(config.AppConfig.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie installs the signed cookie that references a session.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AppConfig.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.AppConfig.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   config.AppConfig.SecureMode,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the cookie on logout or token invalidation.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AppConfig.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.AppConfig.SecureMode,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionGate verifies the cookie, loads the server-side session, and
// enforces the role table. A protected page is never rendered for a missing
// or under-privileged session; the request is redirected to the login entry
// point instead.
type SessionGate struct {
	Sessions session.Store
}

func NewSessionGate(sessions session.Store) *SessionGate {
	return &SessionGate{Sessions: sessions}
}

func (g *SessionGate) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			g.deny(w, r)
			return
		}

		sid, err := security.GetSessionIDFromClaims(claims)
		if err != nil {
			g.deny(w, r)
			return
		}
		sess, err := g.Sessions.Find(r.Context(), sid)
		if err != nil {
			g.deny(w, r)
			return
		}

		if role, gated := RequiredRole(r.URL.Path); gated && sess.Role != role {
			slog.Warn("role gate denied", "path", r.URL.Path, "role", sess.Role)
			g.deny(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *SessionGate) deny(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GetSessionFromContext returns the authenticated session, if any.
func GetSessionFromContext(ctx context.Context) (*model.Session, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(*model.Session)
	return sess, ok
}
