package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/IRP-BookingService/internal/api/handlers"
	"github.com/m04kA/IRP-BookingService/pkg/authtoken"
)

type ctxKey string

const claimsKey ctxKey = "authClaims"

// TokenValidator интерфейс проверки сессионных токенов
type TokenValidator interface {
	Validate(tokenStr string) (*authtoken.Claims, error)
}

// Auth middleware проверки сессионного токена
// Кладет claims в контекст запроса; без валидного токена возвращает 401
type Auth struct {
	tokens TokenValidator
}

// NewAuth создает middleware аутентификации
func NewAuth(tokens TokenValidator) *Auth {
	return &Auth{tokens: tokens}
}

// RequireUser пропускает запросы с валидным токеном любой роли
func (a *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireAdmin пропускает только запросы с токеном администратора
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.authenticate(w, r)
		if !ok {
			return
		}
		if claims.Role != authtoken.RoleAdmin {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func (a *Auth) authenticate(w http.ResponseWriter, r *http.Request) (*authtoken.Claims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		handlers.RespondUnauthorized(w, "authorization header required")
		return nil, false
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		handlers.RespondUnauthorized(w, "bearer token required")
		return nil, false
	}

	claims, err := a.tokens.Validate(token)
	if err != nil {
		handlers.RespondUnauthorized(w, "invalid or expired token")
		return nil, false
	}

	return claims, true
}

func withClaims(ctx context.Context, claims *authtoken.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext возвращает claims текущего запроса
func ClaimsFromContext(ctx context.Context) (*authtoken.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*authtoken.Claims)
	return claims, ok
}
