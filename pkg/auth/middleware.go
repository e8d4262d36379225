package auth

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

type contextKey string

const (
	tokenHeader              = "Authorization"
	tokenPrefix              = "Bearer "
	UserClaimsKey contextKey = "user_claims"
	UserIDKey     contextKey = "user_id"
)

// NewAuthInterceptor creates a ConnectRPC interceptor for authentication.
// Procedures listed in publicProcedures pass through without a token.
func NewAuthInterceptor(signer *Signer, publicProcedures ...string) connect.UnaryInterceptorFunc {
	public := make(map[string]struct{}, len(publicProcedures))
	for _, p := range publicProcedures {
		public[p] = struct{}{}
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if _, ok := public[req.Spec().Procedure]; ok {
				return next(ctx, req)
			}

			authHeader := req.Header().Get(tokenHeader)
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("missing authorization header"))
			}

			if !strings.HasPrefix(authHeader, tokenPrefix) {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid authorization header format"))
			}

			token := strings.TrimPrefix(authHeader, tokenPrefix)
			claims, err := signer.ValidateToken(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid or expired token"))
			}

			ctx = context.WithValue(ctx, UserClaimsKey, claims)
			ctx = context.WithValue(ctx, UserIDKey, claims.Subject)

			return next(ctx, req)
		}
	}
}

// GetUserClaims retrieves the full claims from the context.
func GetUserClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(*Claims)
	return claims, ok
}

// GetUserID retrieves the user ID from the context.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

// SellerID returns the authenticated user as a uuid.
func SellerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := GetUserID(ctx)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return uuid.Parse(id)
}
