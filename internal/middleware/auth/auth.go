package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jewel-shop/internal/storage"
)

// Role ordering: guest < user < admin. Guests may read, users may create
// and update records, admins additionally manage employees and reports.
const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type ctxKey struct{}

type UserStore interface {
	GetUserByLogin(ctx context.Context, login string) (*storage.User, error)
}

// Resolve decodes Basic credentials and attaches the caller's role to the
// request context. Requests without credentials continue as guest; the
// decision to reject is left to Require.
func Resolve(store UserStore, adminLogin, adminPass string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleGuest

			if login, pass, ok := basicCredentials(r); ok {
				role = resolveRole(r.Context(), store, adminLogin, adminPass, login, pass)
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require rejects callers below the given role: 401 for guests so clients
// know to present credentials, 403 for authenticated but insufficient roles.
func Require(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := CallerRole(r.Context())

			if rank(caller) < rank(role) {
				if caller == RoleGuest {
					requireAuth(w)
					return
				}
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CallerRole(ctx context.Context) string {
	if role, ok := ctx.Value(ctxKey{}).(string); ok {
		return role
	}
	return RoleGuest
}

func resolveRole(ctx context.Context, store UserStore, adminLogin, adminPass, login, pass string) string {
	// Bootstrap admin from config, same as the old admin panel credentials.
	if adminLogin != "" && login == adminLogin && pass == adminPass {
		return RoleAdmin
	}

	if store == nil {
		return RoleGuest
	}

	user, err := store.GetUserByLogin(ctx, login)
	if err != nil {
		return RoleGuest
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(pass)) != nil {
		return RoleGuest
	}

	return user.Role
}

func basicCredentials(r *http.Request) (login, pass string, ok bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Basic ") {
		return "", "", false
	}

	creds, err := base64.StdEncoding.DecodeString(authHeader[6:])
	if err != nil {
		return "", "", false
	}

	credPair := strings.SplitN(string(creds), ":", 2)
	if len(credPair) != 2 {
		return "", "", false
	}

	return credPair[0], credPair[1], true
}

func rank(role string) int {
	switch role {
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

func requireAuth(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Jewel Shop"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
