package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenData struct {
	Sub       string
	SessionID string
	Exp       int64
}

// UserID parses the subject back into the numeric user ID.
func (t *TokenData) UserID() (int64, error) {
	return strconv.ParseInt(t.Sub, 10, 64)
}

// TokenSigner issues and checks the HS256 tokens stored in session cookies.
type TokenSigner struct {
	secret []byte
}

func NewTokenSigner(secret string) (*TokenSigner, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 bytes long")
	}
	return &TokenSigner{secret: []byte(secret)}, nil
}

func (s *TokenSigner) Sign(data *TokenData) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   data.Sub,
		ID:        data.SessionID,
		ExpiresAt: jwt.NewNumericDate(time.UnixMilli(data.Exp)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func (s *TokenSigner) ValidateToken(tokenString string) (*TokenData, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, s.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, errors.New("token is missing subject or id")
	}

	return &TokenData{
		Sub:       claims.Subject,
		SessionID: claims.ID,
		Exp:       claims.ExpiresAt.UnixMilli(),
	}, nil
}

func (s *TokenSigner) keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}
