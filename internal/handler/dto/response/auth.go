package response

import (
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        *queries.UserView `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		User:        queries.NewUserView(r.User),
	}
}
