package authz

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/pkg/auth"
	"github.com/nomipay/nomi/pkg/utils"
)

// ProfileService resolves the identity-provider profile for a user id.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type contextKey string

const profileKey contextKey = "profile"

// Middleware loads the caller's profile and enforces the route policy. It
// runs after the JWT middleware, so the user id is already in the context.
func Middleware(profiles ProfileService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(auth.UserIDKey).(uuid.UUID)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			profile, err := profiles.GetProfile(r.Context(), userID)
			if err != nil {
				utils.RespondWithError(w, http.StatusForbidden, "Unknown profile")
				return
			}
			if !Allowed(r.URL.Path, profile.Role) {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			ctx := context.WithValue(r.Context(), profileKey, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the profile stored by Middleware.
func FromContext(ctx context.Context) *domain.Profile {
	profile, _ := ctx.Value(profileKey).(*domain.Profile)
	return profile
}

// WithProfile injects a profile into the context. Used by tests.
func WithProfile(ctx context.Context, profile *domain.Profile) context.Context {
	return context.WithValue(ctx, profileKey, profile)
}
