package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDClaim is the JWT claim carrying the caller's user id.
const UserIDClaim = "userId"

// HMACVerifier verifies HS256/HS384/HS512 signed JWTs. Tokens must carry an
// unexpired "exp" claim and a user id in UserIDClaim or "sub".
type HMACVerifier struct {
	secret []byte
	parser *jwt.Parser
}

var _ Verifier = (*HMACVerifier)(nil)

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodHS256.Alg(),
				jwt.SigningMethodHS384.Alg(),
				jwt.SigningMethodHS512.Alg(),
			}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (v *HMACVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if !token.Valid {
		return nil, ErrInvalidCredential
	}

	userID := userIDFromClaims(claims)
	if userID == "" {
		return nil, fmt.Errorf("%w: no user id claim", ErrInvalidCredential)
	}

	return &Identity{UserID: userID}, nil
}

// userIDFromClaims accepts string and numeric ids, falling back to "sub".
func userIDFromClaims(claims jwt.MapClaims) string {
	switch id := claims[UserIDClaim].(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case int:
		return strconv.Itoa(id)
	}

	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}

// IssueToken signs an HS256 token for userID valid for ttl. The service never
// issues tokens itself; this backs the dev token command and tests.
func IssueToken(secret, userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		UserIDClaim: userID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	})

	return token.SignedString([]byte(secret))
}
