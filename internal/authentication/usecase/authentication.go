package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-srv/internal/authentication"
	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/pkg/encrypter"
	"inventory-srv/pkg/util"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *implUseCase) Register(ctx context.Context, input authentication.RegisterInput) (authentication.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if err := util.IsEmail(email); err != nil {
		return authentication.AuthOutput{}, authentication.ErrInvalidEmail
	}

	role := strings.ToUpper(strings.TrimSpace(input.Role))
	if role == "" {
		role = model.RoleUser
	}
	if !model.IsValidRole(role) {
		return authentication.AuthOutput{}, authentication.ErrInvalidRole
	}
	if role != model.RoleUser && !uc.opts.AllowRoleOnRegister {
		return authentication.AuthOutput{}, authentication.ErrRoleNotAllowed
	}

	// Warehouse manager lookups match on the stored name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return authentication.AuthOutput{}, authentication.ErrRequiredFields
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		if errors.Is(err, encrypter.ErrEmptyPassword) || errors.Is(err, encrypter.ErrPasswordTooLong) {
			return authentication.AuthOutput{}, authentication.ErrWeakPassword
		}
		uc.l.Errorf(ctx, "authentication.usecase.Register: HashPassword failed: %v", err)
		return authentication.AuthOutput{}, err
	}

	u, err := uc.userUC.Create(ctx, user.CreateInput{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return authentication.AuthOutput{}, authentication.ErrEmailExists
		}
		return authentication.AuthOutput{}, err
	}

	return uc.issue(ctx, u.Summary())
}

// Login does not distinguish an unknown email from a wrong password.
func (uc *implUseCase) Login(ctx context.Context, input authentication.LoginInput) (authentication.AuthOutput, error) {
	u, err := uc.userUC.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return authentication.AuthOutput{}, authentication.ErrInvalidCredentials
		}
		return authentication.AuthOutput{}, err
	}

	if !uc.encrypter.CheckPasswordHash(input.Password, u.PasswordHash) {
		return authentication.AuthOutput{}, authentication.ErrInvalidCredentials
	}

	return uc.issue(ctx, u.Summary())
}

// Refresh rotates the pair. The new access token carries the role currently held by the account.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (authentication.AuthOutput, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return authentication.AuthOutput{}, authentication.ErrRefreshTokenMissing
	}

	claims, err := uc.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return authentication.AuthOutput{}, authentication.ErrInvalidRefreshToken
	}

	s, err := uc.userUC.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return authentication.AuthOutput{}, authentication.ErrUserNotFound
		}
		return authentication.AuthOutput{}, err
	}

	return uc.issue(ctx, s)
}

func (uc *implUseCase) CurrentUser(ctx context.Context, sc model.Scope) (model.UserSummary, error) {
	if sc.UserID == "" {
		return model.UserSummary{}, authentication.ErrUnauthenticated
	}

	s, err := uc.userUC.GetByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return model.UserSummary{}, authentication.ErrUserNotFound
		}
		return model.UserSummary{}, err
	}
	return s, nil
}

func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope, input user.ListInput) (user.ListOutput, error) {
	if sc.UserID == "" {
		return user.ListOutput{}, authentication.ErrUnauthenticated
	}
	return uc.userUC.List(ctx, input)
}

func (uc *implUseCase) issue(ctx context.Context, s model.UserSummary) (authentication.AuthOutput, error) {
	tokens, err := uc.jwtManager.IssueTokenPair(s.ID, s.Role)
	if err != nil {
		uc.l.Errorf(ctx, "authentication.usecase.issue: IssueTokenPair failed: %v", err)
		return authentication.AuthOutput{}, err
	}

	return authentication.AuthOutput{
		User:   s,
		Tokens: tokens,
	}, nil
}
