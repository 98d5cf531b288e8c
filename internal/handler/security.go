package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/gen/oas"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// errInvalidToken marks a bearer token that was present but not accepted.
var errInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller.
type Identity struct {
	UserID int64
	// Email is the account address carried in the token, if any.
	Email string
}

type identityKey struct{}

// IdentityFromContext returns the authenticated caller.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// WithIdentity stores id in ctx as the authenticated caller.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Authenticator validates HS256 bearer tokens issued by the storefront's
// account service. The token subject is the numeric user id; the optional
// email claim is the account address.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

// NewAuthenticator returns an Authenticator for the shared secret.
func NewAuthenticator(secret []byte) *Authenticator {
	return &Authenticator{
		secret: secret,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Authenticate parses a raw token and returns the caller it names.
func (a *Authenticator) Authenticate(raw string) (Identity, error) {
	var c claims
	if _, err := a.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}); err != nil {
		return Identity{}, errors.Wrap(err, "parse token")
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Identity{}, errors.Errorf("invalid subject %q", c.Subject)
	}
	return Identity{UserID: id, Email: strings.TrimSpace(c.Email)}, nil
}

// Issue signs a token for the caller. Used by the seed tool and tests; the
// storefront issues tokens in production.
func (a *Authenticator) Issue(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: id.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(a.secret)
}

// SecurityHandler implements ogen's SecurityHandler interface, authenticating
// API requests with the storefront's bearer tokens.
type SecurityHandler struct {
	auth *Authenticator
}

// NewSecurityHandler creates a SecurityHandler backed by auth.
func NewSecurityHandler(auth *Authenticator) *SecurityHandler {
	return &SecurityHandler{auth: auth}
}

// HandleBearerAuth validates the token and stores the caller in the context.
func (s *SecurityHandler) HandleBearerAuth(ctx context.Context, _ oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	id, err := s.auth.Authenticate(strings.TrimSpace(t.Token))
	if err != nil {
		zctx.From(ctx).Debug("Rejected token", zap.Error(err))
		return ctx, errInvalidToken
	}
	ctx = WithIdentity(ctx, id)
	return zctx.With(ctx, zap.Int64("user_id", id.UserID)), nil
}
