// console/dao/auth_dao.go
package dao

import (
	"context"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

type AuthDAO struct {
	Client *gateway.Client
}

func NewAuthDAO(client *gateway.Client) *AuthDAO {
	return &AuthDAO{Client: client}
}

func (dao *AuthDAO) Login(ctx context.Context, req model.LoginRequest) (*model.JwtResponse, error) {
	var resp model.JwtResponse
	if err := dao.Client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (dao *AuthDAO) Register(ctx context.Context, req model.SignupRequest) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := dao.Client.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
