package user

import (
	"inventory-srv/internal/model"
	"inventory-srv/pkg/paginator"
)

type CreateInput struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

type ListInput struct {
	Paginator paginator.Query
}

type ListOutput struct {
	Users     []model.UserSummary
	Paginator paginator.Page
}
