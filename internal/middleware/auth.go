package middleware

import (
	"PassVault/internal/session"
	"context"
	"net/http"
)

type contextKey string

const sessionContextKey contextKey = "vault_session"

// WithSession резолвит cookie в серверную сессию и кладёт её в контекст запроса.
// Отсутствие или истечение сессии здесь не ошибка: решает Auth Gate ниже.
func WithSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(session.CookieName)
			if err == nil {
				if sess, ok := store.Get(c.Value); ok {
					r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth — Auth Gate: без живой сессии защищённый хендлер не запускается,
// запрос уходит редиректом на /login. Побочных эффектов нет.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext достаёт сессию, положенную WithSession.
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}

// SetSessionCookie выставляет http-only cookie с токеном сессии.
// MaxAge совпадает с окном бездействия сессии.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(session.IdleTTL.Seconds()),
	})
}

// ClearSessionCookie немедленно гасит cookie на стороне клиента.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
