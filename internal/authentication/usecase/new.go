package usecase

import (
	"inventory-srv/internal/authentication"
	"inventory-srv/internal/user"
	"inventory-srv/pkg/encrypter"
	"inventory-srv/pkg/jwt"
	"inventory-srv/pkg/log"
)

// Options configures the authentication use case.
type Options struct {
	// AllowRoleOnRegister lets a registrant pick MANAGER or ADMIN.
	AllowRoleOnRegister bool
}

type implUseCase struct {
	l          log.Logger
	userUC     user.UseCase
	jwtManager jwt.IManager
	encrypter  encrypter.Encrypter
	opts       Options
}

// New - Factory function
func New(
	l log.Logger,
	userUC user.UseCase,
	jwtManager jwt.IManager,
	enc encrypter.Encrypter,
	opts Options,
) authentication.UseCase {
	return &implUseCase{
		l:          l,
		userUC:     userUC,
		jwtManager: jwtManager,
		encrypter:  enc,
		opts:       opts,
	}
}
