package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/velora/identity-service/internal/core/domain"
	"github.com/velora/identity-service/internal/core/ports"
)

// DefaultTokenTTL is the validity window of issued tokens.
const DefaultTokenTTL = time.Hour

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer mints and verifies HS256-signed bearer tokens. The signing key is
// process-wide configuration read once at startup.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the issuer's time source. Intended for tests.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	i.now = now
	return i
}

func (i *JWTIssuer) Issue(accountID, role string) (string, error) {
	now := i.now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token. Malformed input, a signature mismatch
// and expiry all collapse into domain.ErrInvalidToken.
func (i *JWTIssuer) Verify(token string) (ports.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return ports.Identity{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return ports.Identity{}, domain.ErrInvalidToken
	}

	return ports.Identity{AccountID: claims.Subject, Role: claims.Role}, nil
}
