package connectrpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
)

type userIDKey struct{}

// UserIDFromContext returns the authenticated user set by the auth interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

// WithUserID stores userID the way the auth interceptor does.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

var errMissingToken = errors.New("missing bearer token")

// AuthInterceptor verifies an HS256 bearer token and exposes its subject as the user id.
// Procedures listed in public skip verification.
func AuthInterceptor(secret string, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if _, ok := open[req.Spec().Procedure]; ok {
				return next(ctx, req)
			}
			raw, ok := strings.CutPrefix(req.Header().Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errMissingToken)
			}
			if secret == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("token verification is not configured"))
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
				return []byte(secret), nil
			}); err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("parse token: %w", err))
			}
			if claims.Subject == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("token has no subject"))
			}
			return next(WithUserID(ctx, claims.Subject), req)
		}
	}
}

// SignToken issues an HS256 token for userID. Tokens are normally minted by the identity
// provider; this exists for tests and local tooling.
func SignToken(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString([]byte(secret))
}

func requireUser(ctx context.Context) (string, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", connect.NewError(connect.CodeUnauthenticated, errMissingToken)
	}
	return userID, nil
}
