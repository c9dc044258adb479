package chi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// Gateway headers carrying the caller identity when token auth is disabled.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Role   domuser.Role
}

// Claims are the JWT claims issued by the platform: sub is the user ID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type identityKey struct{}

// ContextWithIdentity stores the caller identity in the context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller identity set by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}

// AuthMiddleware resolves the caller identity.
// With a secret, it requires an HS256 Bearer token; without one, auth is
// delegated to the gateway and the identity is read from X-User-ID / X-User-Role.
func AuthMiddleware(secret, issuer string) func(http.Handler) http.Handler {
	var parser *jwt.Parser
	if secret != "" {
		opts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		}
		if issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		parser = jwt.NewParser(opts...)
	}
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Exempt paths
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			var (
				id  Identity
				err error
			)
			if parser == nil {
				id, err = identityFromHeaders(r)
			} else {
				id, err = identityFromToken(r, parser, key)
			}
			if err != nil {
				writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole rejects callers without the given role.
func RequireRole(role domuser.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, "missing caller identity")
				return
			}
			if id.Role != role {
				writeError(w, http.StatusForbidden, ErrorResponseCodeForbidden, "requires role "+string(role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func identityFromHeaders(r *http.Request) (Identity, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return Identity{}, errors.New("missing " + HeaderUserID + " header")
	}
	return Identity{
		UserID: userID,
		Role:   domuser.Role(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole)))),
	}, nil
}

func identityFromToken(r *http.Request, parser *jwt.Parser, key []byte) (Identity, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return Identity{}, errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(auth, bearerPrefix) {
		return Identity{}, errors.New("authorization header must use Bearer scheme")
	}

	var claims Claims
	_, err := parser.ParseWithClaims(auth[len(bearerPrefix):], &claims, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, errors.New("token expired")
		}
		return Identity{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("token without subject")
	}

	role := domuser.Role(strings.ToLower(claims.Role))
	if role != "" && !role.IsValid() {
		return Identity{}, fmt.Errorf("unknown role %q", claims.Role)
	}
	return Identity{UserID: claims.Subject, Role: role}, nil
}
