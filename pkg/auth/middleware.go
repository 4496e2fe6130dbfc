package auth

import (
	"net/http"
	"strings"

	"github.com/GlebRadaev/authordash/pkg/utils"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cred := NewCredential(strings.TrimPrefix(authHeader, "Bearer "))
		if cred.Empty() {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCredential(r.Context(), cred)))
	})
}
