package repo

import (
	"context"

	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UserRepository owns user persistence and the password hashing boundary.
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, password string) (*domain.User, errs.Error)
	GetUserByEmail(ctx context.Context, email, password string) (*domain.User, errs.Error)
}

type userRepository struct {
	store  UserStore
	hasher encode.Hasher
}

func NewUserRepository(store UserStore, hasher encode.Hasher) UserRepository {
	return &userRepository{store: store, hasher: hasher}
}

func (r *userRepository) CreateUser(ctx context.Context, name, email, password string) (*domain.User, errs.Error) {
	hash, err := r.hasher.Hash(password)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash password err: %v", err)
		return nil, errs.ServerError
	}

	u, err := r.store.Insert(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			hlog.CtxNoticef(ctx, "email already in use: %s", email)
			return nil, errs.EmailAlreadyInUse
		}
		hlog.CtxErrorf(ctx, "insert user err: %v", err)
		return nil, errs.InternalStorageError
	}
	return u, nil
}

// GetUserByEmail returns the stored user, hash included, when the password
// matches.
func (r *userRepository) GetUserByEmail(ctx context.Context, email, password string) (*domain.User, errs.Error) {
	u, err := r.store.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by email err: %v", err)
		return nil, errs.InternalStorageError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}
	if !r.hasher.Verify(password, u.PasswordHash) {
		return nil, errs.WrongPassword
	}
	return u, nil
}
