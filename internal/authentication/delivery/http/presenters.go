package http

import (
	"inventory-srv/internal/authentication"
	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/pkg/paginator"
	"inventory-srv/pkg/util"
)

const tokenHint = "Send this token in Authorization header as: Bearer YOUR_TOKEN"

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

func (r registerReq) toInput() authentication.RegisterInput {
	return authentication.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     r.Role,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() authentication.LoginInput {
	return authentication.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type listUsersReq struct {
	paginator.Query
}

func (r listUsersReq) toInput() user.ListInput {
	return user.ListInput{Paginator: r.Query}
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func newUserResp(s model.UserSummary) userResp {
	return userResp{
		ID:    s.ID,
		Email: s.Email,
		Name:  s.Name,
		Role:  s.Role,
	}
}

type authResp struct {
	User        userResp `json:"user"`
	AccessToken string   `json:"accessToken"`
	ExpiresAt   int64    `json:"expiresAt"`
	Hint        string   `json:"hint"`
}

func (h *handler) newAuthResp(o authentication.AuthOutput) authResp {
	return authResp{
		User:        newUserResp(o.User),
		AccessToken: o.Tokens.AccessToken,
		ExpiresAt:   o.Tokens.AccessExpiresAt.Unix(),
		Hint:        tokenHint,
	}
}

type refreshResp struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

func (h *handler) newRefreshResp(o authentication.AuthOutput) refreshResp {
	return refreshResp{
		AccessToken: o.Tokens.AccessToken,
		ExpiresAt:   o.Tokens.AccessExpiresAt.Unix(),
	}
}

type listUsersResp struct {
	Users     []userResp     `json:"users"`
	Paginator paginator.Page `json:"paginator"`
}

func (h *handler) newListUsersResp(o user.ListOutput) listUsersResp {
	return listUsersResp{
		Users:     util.MapSlice(o.Users, newUserResp),
		Paginator: o.Paginator,
	}
}

type identityResp struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type dashboardResp struct {
	Message string       `json:"message"`
	User    identityResp `json:"user"`
}

func (h *handler) newDashboardResp(sc model.Scope) dashboardResp {
	return dashboardResp{
		Message: "Manager/Admin access granted",
		User: identityResp{
			ID:   sc.UserID,
			Role: sc.Role,
		},
	}
}
