package auth

import (
	"context"

	"vershash/internal/structs"
	"vershash/pkg/config"
	"vershash/pkg/logger"
	"vershash/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
	}

	Service interface {
		Login(ctx context.Context, req structs.AdminLogin) (structs.AuthResponse, error)
	}

	service struct {
		config config.IConfig
		logger logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		config: p.Config,
		logger: p.Logger,
	}
}

// Login checks the credentials against the env-configured admin account.
// Username and password failures answer the same error so probing cannot
// tell a known username apart.
func (s *service) Login(ctx context.Context, req structs.AdminLogin) (structs.AuthResponse, error) {
	if req.Username == "" {
		return structs.AuthResponse{}, structs.MissingField("username")
	}
	if req.Password == "" {
		return structs.AuthResponse{}, structs.MissingField("password")
	}

	var (
		username = s.config.GetString("admin.username")
		hash     = s.config.GetString("admin.password_hash")
	)

	userOK := utils.SecureEquals(req.Username, username)

	var passOK bool
	if hash != "" {
		passOK = utils.CompareInBcrypt(hash, req.Password)
	} else {
		passOK = utils.SecureEquals(req.Password, s.config.GetString("admin.password"))
	}

	if !userOK || !passOK {
		return structs.AuthResponse{}, structs.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(username)
	if err != nil {
		s.logger.Error(ctx, "err on GenerateJWT", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	return structs.AuthResponse{
		Token: token,
		User:  structs.AdminUser{Username: username},
	}, nil
}
