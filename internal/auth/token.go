package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL: los tokens expiran una hora después de emitidos.
const TokenTTL = time.Hour

var ErrInvalidToken = errors.New("token inválido o expirado")

// Claims es la identidad embebida en un bearer token: sub = email + rol.
// No se valida issuer ni audience; la clave de firma es el único ancla
// de confianza.
type Claims struct {
	Subject string
	Role    Role
}

func IssueToken(secret string, email string, role Role) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"exp":  now.Add(TokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret string, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	roleStr, _ := mapClaims["role"].(string)
	role, err := ParseRole(roleStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{Subject: sub, Role: role}, nil
}
