package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/DMR-ReservationService/internal/api/handlers"
	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingIdentity = "не указан заголовок X-User-ID"
	msgInvalidIdentity = "некорректный заголовок X-User-ID"
	msgInvalidRole     = "некорректный заголовок X-User-Role"
)

type identityContextKey struct{}

// Auth извлекает личность вызывающего из заголовков X-User-ID и
// X-User-Role и кладет ее в контекст запроса. Заголовки проставляет
// доверенный шлюз, сервис принимает их как есть.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidIdentity)
			return
		}

		role := domain.RoleUser
		switch rawRole := r.Header.Get(headerUserRole); rawRole {
		case "", string(domain.RoleUser):
		case string(domain.RoleAdmin):
			role = domain.RoleAdmin
		default:
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidRole)
			return
		}

		ident := domain.Identity{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), identityContextKey{}, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext возвращает личность вызывающего из контекста
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey{}).(domain.Identity)
	return ident, ok
}
