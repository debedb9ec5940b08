package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	userRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/user"
)

// HeaderUserID carries the authenticated account id, set by the gateway
// in front of this service.
const HeaderUserID = "X-User-ID"

type ctxKey struct{}

var userCtxKey ctxKey

// UserProvider resolves the account behind an id.
type UserProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Auth resolves the X-User-ID header into a full account and stores it
// in the request context. Requests without a valid, known id are
// rejected before reaching any handler.
func Auth(users UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw == "" {
				handlers.RespondUnauthorized(w, "cabeçalho X-User-ID ausente")
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				handlers.RespondUnauthorized(w, "cabeçalho X-User-ID inválido")
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					handlers.RespondUnauthorized(w, "usuário não encontrado")
					return
				}
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the account resolved by Auth.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok
}
