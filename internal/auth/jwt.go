package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MikhailRaia/slugid"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const tokenLifetime = 24 * time.Hour

// Claims identifies the client allowed to request slugids.
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 tokens.
type JWTService struct {
	secretKey []byte
	source    slugid.Source
}

// NewJWTService creates a JWTService; token IDs are drawn from src.
func NewJWTService(secretKey string, src slugid.Source) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		source:    src,
	}
}

// GenerateToken issues a token for clientID valid for 24 hours.
func (j *JWTService) GenerateToken(clientID string) (string, error) {
	tokenID, err := slugid.NiceWith(j.source)
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := time.Now()
	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken parses tokenString and returns its claims.
func (j *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.ClientID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
