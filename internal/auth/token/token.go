// Package token issues and verifies the HS256 access/refresh token pair.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrInvalidToken covers a bad signature, expiry, and a token of the wrong
// type presented to Verify.
var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the registered claims and tags the token as access or
// refresh so one cannot be presented in place of the other.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Pair issues an access and refresh token with the given subject.
func (i *Issuer) Pair(subject string) (TokenPairRaw, error) {
	access, err := i.sign(subject, TypeAccess, i.accessTTL)
	if err != nil {
		return TokenPairRaw{}, err
	}
	refresh, err := i.sign(subject, TypeRefresh, i.refreshTTL)
	if err != nil {
		return TokenPairRaw{}, err
	}
	return TokenPairRaw{Access: access, Refresh: refresh}, nil
}

// Access issues a standalone access token with the given subject.
func (i *Issuer) Access(subject string) (string, error) {
	return i.sign(subject, TypeAccess, i.accessTTL)
}

type TokenPairRaw struct {
	Access  string
	Refresh string
}

func (i *Issuer) sign(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses raw, checks the signature and expiry, and requires the token
// to be of wantType.
func (i *Issuer) Verify(raw, wantType string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
