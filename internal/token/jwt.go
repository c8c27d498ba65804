package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/pits-server/internal/model"
)

// Claims represents session token claims. The subject is the client id and
// the audience is the API the credential belongs to.
type Claims struct {
	jwt.RegisteredClaims
	Scopes []string `json:"scp,omitempty"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager issuing tokens valid for ttl.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// Generate issues a session token for the client config.
func (j *JWT) Generate(cfg model.ClientConfig) (model.Session, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   cfg.ClientID,
			Audience:  jwt.ClaimStrings{cfg.API},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Scopes: cfg.Scopes,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return model.Session{Token: tokenString, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// Lookup validates the token for api and returns its client id.
func (j *JWT) Lookup(tokenString, api string) (string, bool) {
	if tokenString == "" {
		return "", false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	},
		jwt.WithAudience(api),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !token.Valid {
		return "", false
	}
	if claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}
