package middleware

import (
	"net/http"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
)

const msgAdminOnly = "операция доступна только администратору"

// AdminOnly пропускает только администраторов. Ставится после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok || !ident.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
