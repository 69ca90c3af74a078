package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
)

// Expiry is the fixed lifetime of an issued credential.
const Expiry = 1 * time.Hour

// ErrNoFirebase is returned by VerifyFirebaseToken when no Firebase auth
// client was configured.
var ErrNoFirebase = errors.New("firebase verification not configured")

// Service issues and verifies the bearer credentials protecting the API.
type Service struct {
	signingKey []byte
	issuer     string
	authClient *auth.Client
}

// Claims are the identity claims carried by an issued credential.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// New creates a token service. authClient may be nil, in which case
// Firebase ID-token verification is unavailable.
func New(signingKey, issuer string, authClient *auth.Client) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		authClient: authClient,
	}
}

// GenerateSigningKey generates a secure random signing key.
func GenerateSigningKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate signing key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Generate signs a credential for the given identity. The credential
// expires after Expiry and passes Validate immediately.
func (s *Service) Generate(email, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Expiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// Validate verifies a credential and returns the decoded claims. It has
// no side effects: expired, malformed, or badly signed credentials fail.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// VerifyFirebaseToken verifies a Firebase ID token and returns the
// decoded token. Used at session issuance when the deployment fronts a
// Firebase-authenticated client.
func (s *Service) VerifyFirebaseToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if s.authClient == nil {
		return nil, ErrNoFirebase
	}
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify firebase token: %w", err)
	}
	return token, nil
}

// FirebaseEnabled reports whether Firebase ID-token verification is
// configured.
func (s *Service) FirebaseEnabled() bool {
	return s.authClient != nil
}
