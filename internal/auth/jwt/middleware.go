package jwtauth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/apperror"
	"github.com/xw1nchester/nailsite/internal/salon"
)

type viewerContextKey struct{}

type tokenContextKey struct{}

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mockjwt
type JwtManager interface {
	ParseToken(tokenStr string) (int, error)
}

type ViewerResolver interface {
	Viewer(ctx context.Context, token string) (*salon.Viewer, error)
}

// NewMiddleware recognises the viewer from a bearer token or the cookieName
// cookie. It never rejects a request: a missing, expired or unknown token
// leaves the request anonymous.
func NewMiddleware(logger *zap.Logger, tokenManager JwtManager, resolver ViewerResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokenManager.ParseToken(token)
			if err != nil {
				logger.Debug("ignoring unusable JWT token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			viewer, err := resolver.Viewer(r.Context(), token)
			if err != nil {
				if !errors.Is(err, apperror.ErrUnauthorized) {
					logger.Warn("error when resolving viewer", zap.Int("user_id", userID), zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}
			if viewer == nil {
				next.ServeHTTP(w, r)
				return
			}
			if viewer.ID == 0 {
				viewer.ID = userID
			}

			ctx := context.WithValue(r.Context(), viewerContextKey{}, viewer)
			ctx = context.WithValue(ctx, tokenContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			return ""
		}
		return headerParts[1]
	}

	if cookieName == "" {
		return ""
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// ViewerFromContext returns the recognised viewer, nil when anonymous.
func ViewerFromContext(ctx context.Context) *salon.Viewer {
	viewer, _ := ctx.Value(viewerContextKey{}).(*salon.Viewer)
	return viewer
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// WithViewer stores viewer and its token in ctx the way the middleware does.
func WithViewer(ctx context.Context, viewer *salon.Viewer, token string) context.Context {
	ctx = context.WithValue(ctx, viewerContextKey{}, viewer)
	return context.WithValue(ctx, tokenContextKey{}, token)
}
