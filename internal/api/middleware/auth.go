package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid token"
	msgForbidden    = "access denied"
)

// ErrInvalidSubject возвращается, когда sub токена не является ID опекуна
var ErrInvalidSubject = errors.New("auth: token subject is not a guardian id")

type contextKey int

const (
	userIDKey contextKey = iota
	rolesKey
)

// Claims токен выпускается внешним сервисом авторизации: sub содержит ID опекуна
type Claims struct {
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// AllRoles объединяет одиночный и списочный claim ролей
func (c *Claims) AllRoles() []string {
	roles := make([]string, 0, len(c.Roles)+1)
	if c.Role != "" {
		roles = append(roles, c.Role)
	}
	return append(roles, c.Roles...)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет HS256 Bearer токен и кладёт ID опекуна и роли в контекст
func Auth(secret string, logger Logger) mux.MiddlewareFunc {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			userID, roles, err := ParseToken(strings.TrimPrefix(header, "Bearer "), key)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, roles)))
		})
	}
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(raw string, key []byte) (int64, []string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, nil, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, nil, ErrInvalidSubject
	}
	return userID, claims.AllRoles(), nil
}

// RequireRoles пропускает запрос, только если у пользователя есть одна из ролей.
// Должен стоять после Auth
func RequireRoles(roles ...string) mux.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, role := range GetRoles(r.Context()) {
				if _, ok := allowed[role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// WithUser кладёт пользователя в контекст
func WithUser(ctx context.Context, userID int64, roles []string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, rolesKey, roles)
}

// GetUserID возвращает ID опекуна из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

func GetRoles(ctx context.Context) []string {
	roles, _ := ctx.Value(rolesKey).([]string)
	return roles
}
