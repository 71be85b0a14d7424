// Package auth decodes bearer credentials into caller identities. The
// verification scheme is pluggable through Verifier; HMACVerifier covers
// HMAC-signed JWTs.
package auth

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/garnizeh/jobboard/internal/errors"
)

var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrInvalidCredential   = errors.New("invalid credential")
)

// Identity is the caller decoded from a valid credential.
type Identity struct {
	UserID string
}

// Verifier validates a raw token and returns the identity it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type ctxKey struct{}

// WithIdentity attaches the caller identity to ctx.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom returns the identity stored by WithIdentity, if any.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok && id != nil
}

// BearerToken extracts the token from an Authorization header value of the
// form "Bearer <token>". The scheme is matched case-insensitively.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingCredential
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedCredential
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedCredential
	}
	return token, nil
}

// Authenticate runs the full guard: header parsing then verification. Every
// failure is reported as an Unauthorized domain error.
func Authenticate(ctx context.Context, v Verifier, header string) (*Identity, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, apperrors.Unauthorized("Unauthorized", err)
	}
	id, err := v.Verify(ctx, token)
	if err != nil {
		return nil, apperrors.Unauthorized("Unauthorized", err)
	}
	if id == nil || id.UserID == "" {
		return nil, apperrors.Unauthorized("Unauthorized", ErrInvalidCredential)
	}
	return id, nil
}
