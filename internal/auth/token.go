package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет HS256 access-токены.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenManager(secret string, ttl time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

func (m *TokenManager) Issue(p entities.Principal) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		Admin: p.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    m.issuer,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

func (m *TokenManager) Parse(raw string) (entities.Principal, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %v", entities.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.Principal{}, fmt.Errorf("%w: invalid token claims", entities.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return entities.Principal{}, fmt.Errorf("%w: invalid subject", entities.ErrUnauthorized)
	}

	return entities.Principal{UserID: userID, IsAdmin: claims.Admin}, nil
}
