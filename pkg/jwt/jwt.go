package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PurposeWipe identifica los tokens de confirmación del borrado total.
const PurposeWipe = "wipe"

// ErrInvalidToken se devuelve para tokens mal formados, vencidos, con firma incorrecta o de otro propósito.
var ErrInvalidToken = errors.New("jwt: token inválido")

// Claims incluye los claims estándar JWT más el propósito del token.
// Un token de un propósito no sirve para otro.
type Claims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// Generate firma (HS256) un token de un solo propósito que vence en ttl.
// Cada token lleva un jti propio para poder consumirlo una sola vez.
func Generate(secret, issuer, purpose string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("jwt: ttl debe ser positivo")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Purpose: purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, vencimiento y propósito del token.
// Cualquier fallo se reporta envuelto en ErrInvalidToken.
func Parse(secret, purpose, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidos", ErrInvalidToken)
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("%w: propósito %q", ErrInvalidToken, claims.Purpose)
	}
	return claims, nil
}
