package authentication

import (
	"inventory-srv/internal/model"
	"inventory-srv/pkg/jwt"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is returned by every flow that issues a token pair.
type AuthOutput struct {
	User   model.UserSummary
	Tokens jwt.TokenPair
}
