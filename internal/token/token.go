// Package token выпускает и проверяет подписанные JWT-токены доступа.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signature, malformed payload and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMalformedHeader — заголовок Authorization отсутствует или без префикса Bearer.
	ErrMalformedHeader = errors.New("authorization header missing or invalid")
)

const bearerPrefix = "Bearer "

// Claims расширяет jwt.RegisteredClaims, добавлен UserID.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Service подписывает токены секретом и проверяет их без обращения к хранилищу.
type Service struct {
	secret   []byte
	lifetime time.Duration
}

func New(secret []byte, lifetime time.Duration) *Service {
	return &Service{secret: secret, lifetime: lifetime}
}

// Issue выдает HS256-токен с user id и сроком действия now + lifetime.
func (s *Service) Issue(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "todo-app",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify возвращает user id из токена. Любая причина отказа — ErrInvalidToken:
// конкретика не сообщается, чтобы не подсказывать, какая проверка не прошла.
func (s *Service) Verify(tokenString string) (int, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// ExtractBearer отрезает префикс "Bearer " от заголовка Authorization.
func ExtractBearer(header string) (string, error) {
	if len(header) < len(bearerPrefix) || header[:len(bearerPrefix)] != bearerPrefix {
		return "", ErrMalformedHeader
	}
	return header[len(bearerPrefix):], nil
}
