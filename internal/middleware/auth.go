package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/alexedwards/scs/v2"

	"github.com/gceelixir/symposium/internal/httputil"
)

// Session keys. AdminAuthKey marks an authenticated admin session,
// UserEmailKey remembers the registrant's email for the dashboard and
// verify views, WizardKey holds the serialized registration wizard.
const (
	AdminAuthKey = "adminAuth"
	UserEmailKey = "userEmail"
	WizardKey    = "wizard"
)

const defaultAdminKey = "admin123"

// AdminKey is the console password, from ELIXIR_ADMIN_KEY when set.
func AdminKey() string {
	if key := os.Getenv("ELIXIR_ADMIN_KEY"); key != "" {
		return key
	}
	return defaultAdminKey
}

// CheckAdminKey compares in constant time.
func CheckAdminKey(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(AdminKey())) == 1
}

// RequireAdmin guards the console routes behind the session marker set at
// login.
func RequireAdmin(sessionManager *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionManager.GetBool(r.Context(), AdminAuthKey) {
				httputil.Unauthorized(w, "Admin login required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
