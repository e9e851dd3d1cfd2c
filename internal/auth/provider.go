package auth

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/config"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/golang-jwt/jwt/v4"
)

// Claims carried inside session tokens
type Claims struct {
	UserID   string         `json:"user_id"`
	TenantID string         `json:"tenant_id"`
	Role     types.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Provider issues and validates JWT session tokens
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Configuration) *Provider {
	expiry := cfg.Auth.TokenExpiry
	if expiry == 0 {
		expiry = 30 * 24 * time.Hour
	}
	return &Provider{
		secret: []byte(cfg.Auth.Secret),
		expiry: expiry,
	}
}

// IssueToken creates a signed session token for the user
func (p *Provider) IssueToken(userID, tenantID string, role types.UserRole) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   userID,
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to sign session token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token
func (p *Provider) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				Mark(ierr.ErrUnauthorized)
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired token").
			Mark(ierr.ErrUnauthorized)
	}
	return claims, nil
}
