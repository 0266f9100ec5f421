package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token carrying the user id as
	// subject and the user's role.
	GenerateToken(subject string, role string) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
