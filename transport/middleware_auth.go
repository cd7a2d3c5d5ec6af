package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/srisatyasai136/review/application/user"
	"github.com/srisatyasai136/review/constant"
	utilsContext "github.com/srisatyasai136/review/utils/context"
	"github.com/srisatyasai136/review/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public endpoints (auth flow, swagger, internal API) pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			session, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithSession(r.Context(), session.UserID, session.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var publicPaths = map[string]bool{
	constant.PathLogin:          true,
	constant.PathRegister:       true,
	constant.PathVerifyOTP:      true,
	"/resend-otp":               true,
	constant.PathForgotPassword: true,
	constant.PathResetPassword:  true,
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	// internal routes carry their own api key check
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return publicPaths[path]
}
