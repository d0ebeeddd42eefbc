package http

import (
	"board-srv/internal/model"
	"board-srv/internal/user"
	"board-srv/pkg/paginator"
	"board-srv/pkg/response"
)

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (r changePasswordReq) toInput() user.ChangePasswordInput {
	return user.ChangePasswordInput{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}

type userResp struct {
	ID        string             `json:"id"`
	Username  string             `json:"username"`
	Role      string             `json:"role"`
	IsBlocked bool               `json:"is_blocked"`
	CreatedAt response.DateTime  `json:"created_at"`
	LastLogin *response.DateTime `json:"last_login,omitempty"`
}

func newUserResp(u model.User) userResp {
	resp := userResp{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
	if u.LastLogin != nil {
		t := response.DateTime(*u.LastLogin)
		resp.LastLogin = &t
	}
	return resp
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newAuthResp(o user.AuthOutput) authResp {
	return authResp{
		Token: o.Token,
		User:  newUserResp(o.User),
	}
}

type adminListUsersResp struct {
	Users []userResp                  `json:"users"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newAdminListUsersResp(o user.AdminListOutput) adminListUsersResp {
	resp := adminListUsersResp{
		Users: make([]userResp, 0, len(o.Users)),
		Meta:  o.Paginator.ToResponse(),
	}
	for _, u := range o.Users {
		resp.Users = append(resp.Users, newUserResp(u))
	}
	return resp
}
