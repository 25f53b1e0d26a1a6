package usecase

import (
	"workshop-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the auth-context boundary: token issuance lives outside
// this service, validation supplies the actor for ownership checks.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, claims.Role, nil
}
