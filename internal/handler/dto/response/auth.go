package response

import (
	"washbook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type VerifyResponse struct {
	User UserResponse `json:"user"`
}

func FromUserView(view *queries.AuthorizedUserView) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return resp
}
