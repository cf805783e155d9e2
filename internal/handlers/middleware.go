package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"propertyHub/internal/models"
	"propertyHub/internal/session"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type contextKey int

const (
	loggerKey contextKey = iota
	traceIdKey
	adminKey
)

func LoggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func TraceIdFrom(ctx context.Context) string {
	traceId, _ := ctx.Value(traceIdKey).(string)
	return traceId
}

// AdminFrom returns the admin user attached by AuthorizationMiddleware.
func AdminFrom(ctx context.Context) (models.AdminUser, bool) {
	user, ok := ctx.Value(adminKey).(models.AdminUser)
	return user, ok
}

// LoggerMiddleware logs every request and hands a request scoped logger,
// tagged with a trace id, to the handlers.
func LoggerMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceId := r.Header.Get("X-Trace-ID")
			if _, err := uuid.Parse(traceId); err != nil {
				traceId = uuid.New().String()
			}

			requestLogger := logger.With("trace_id", traceId)

			ctx := context.WithValue(r.Context(), loggerKey, requestLogger)
			ctx = context.WithValue(ctx, traceIdKey, traceId)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set("X-Trace-ID", traceId)
			startTime := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			requestLogger.Info("Request finished",
				"http_method", r.Method,
				"http_path", r.URL.Path,
				"status_code", ww.Status(),
				"bytes_written", ww.BytesWritten(),
				"duration_ms", time.Since(startTime).Milliseconds(),
			)
		})
	}
}

// AuthorizationMiddleware admits requests that carry a bearer token issued by
// the login handler while the gate still holds a live session for that user.
func AuthorizationMiddleware(next http.Handler, gate *session.Gate, secret []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, r, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &models.CustomClaims{}

		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			writeError(w, r, http.StatusUnauthorized, "Invalid authorization token")
			return
		}

		if claims.Role != models.AdminRole {
			writeError(w, r, http.StatusUnauthorized, "You are not an admin")
			return
		}

		user, ok := gate.CurrentUser(r.Context())
		if !ok || user.Username != claims.Username || user.LoginTime != claims.LoginTime {
			writeError(w, r, http.StatusUnauthorized, "Session expired, please log in again")
			return
		}

		ctx := context.WithValue(r.Context(), adminKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
