package user

import (
	"context"

	"user_center/be/biz/config"
	"user_center/be/biz/dal/repo"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/util/encode"
)

// Service sits between the handlers and the repository. Errors from the
// repository are returned as they are.
type Service interface {
	GetUser(ctx context.Context, req *dto.FindUserReq) (*domain.User, errs.Error)
	CreateUser(ctx context.Context, req *dto.CreateUserReq) (*domain.User, errs.Error)
}

type service struct {
	users repo.UserRepository
}

func New(users repo.UserRepository) Service {
	return &service{users: users}
}

// NewDefault builds the service over the store opened by db.Init.
func NewDefault(conf *config.ServiceConf) Service {
	return New(repo.NewUserRepository(
		repo.NewDefaultStore(conf.Storage.Driver),
		encode.NewBcryptHasher(conf.Hash.Cost),
	))
}

func (s *service) GetUser(ctx context.Context, req *dto.FindUserReq) (*domain.User, errs.Error) {
	return s.users.GetUserByEmail(ctx, req.Email, req.Password)
}

func (s *service) CreateUser(ctx context.Context, req *dto.CreateUserReq) (*domain.User, errs.Error) {
	return s.users.CreateUser(ctx, req.Name, req.Email, req.Password)
}
