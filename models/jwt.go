package models

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

var JWT = struct {
	HISTORY_COOKIE_NAME string
	HISTORY_SCOPE       string
}{
	HISTORY_COOKIE_NAME: "recent_colors",
	HISTORY_SCOPE:       "recent-colors",
}

type HistoryClaims struct {
	Recent RecentColors `json:"recent"`
	Scope  string       `json:"scope"`
	jwt.RegisteredClaims
}

// DeriveHistoryKey turns the configured secret into the HMAC key used
// only for history tokens.
func DeriveHistoryKey(secret string) ([]byte, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(JWT.HISTORY_SCOPE))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("deriving history key: %w", err)
	}
	return key, nil
}

func NewHistoryToken(recent RecentColors, key []byte, expiry time.Time) (string, error) {
	claims := HistoryClaims{
		Recent: recent,
		Scope:  JWT.HISTORY_SCOPE,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func ValidateHistoryToken(tokenString string, key []byte) (*HistoryClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &HistoryClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*HistoryClaims)
	if !ok || claims.Scope != JWT.HISTORY_SCOPE {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
