package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the synchronous view of "who is logged in right now". The zero
// value means anonymous; a bad or missing token is anonymous, never an error.
type Session struct {
	UserID string
	Email  string
	Admin  bool
}

func (s Session) LoggedIn() bool {
	return s.UserID != ""
}

// Verifier reads sessions out of HMAC-signed bearer tokens.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) FromRequest(r *http.Request) Session {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return Session{}
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}
	}

	s := Session{}
	if sub, ok := claims["sub"].(string); ok {
		s.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if admin, ok := claims["admin"].(bool); ok {
		s.Admin = admin
	}
	return s
}

type ctxKey struct{}

// Middleware resolves the session once per request and stashes it in the
// context for handlers and the checkout flow.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithSession(r.Context(), v.FromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by Middleware, or the anonymous
// session if none was stored.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(ctxKey{}).(Session); ok {
		return s
	}
	return Session{}
}
