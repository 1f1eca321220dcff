package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"arena-store/internal/auth"
	"arena-store/internal/model"
	"arena-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

// claimsKey is the request-context key holding the authenticated claims.
const claimsKey contextKey = "authClaims"

// ContextWithClaims returns a context carrying the given session claims.
func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the access-token claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Authenticate validates the access token and stores its claims in the
// request context. The token comes from the Authorization header or,
// failing that, the access_token cookie.
func Authenticate(tokens *auth.TokenService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing access token")
				return
			}

			claims, err := tokens.ValidateAccessToken(tokenString)
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected access token")
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin rejects requests whose profile role is not admin. The role
// is re-read from the database so a revoked admin loses access before the
// token expires.
func RequireAdmin(profileRepo repository.ProfileRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing access token")
				return
			}

			profile, err := lookupProfile(r.Context(), profileRepo, claims)
			if err != nil {
				logger.Error().Err(err).Str("user_id", claims.UserID).Msg("failed to load profile for admin check")
				writeAuthError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
				return
			}

			if profile == nil || profile.Role != model.RoleAdmin {
				logger.Warn().Str("user_id", claims.UserID).Str("path", r.URL.Path).Msg("admin access denied")
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					writeAuthError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the access token from the Authorization header,
// falling back to the access_token cookie set at login.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func lookupProfile(ctx context.Context, profileRepo repository.ProfileRepository, claims *auth.Claims) (*model.Profile, error) {
	if userID, err := uuid.Parse(claims.UserID); err == nil {
		profile, err := profileRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			return profile, nil
		}
	}
	if claims.Email == "" {
		return nil, nil
	}
	return profileRepo.GetByEmail(ctx, claims.Email)
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error": %q, "message": %q}`, code, message)
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
