package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key
// rejects every request.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
				writeError(w, errors.SetDetailError(constant.ErrUnauthorize, "invalid api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
