package repo

import (
	"context"

	"user_center/be/biz/config"
	"user_center/be/biz/db/gormdb"
	"user_center/be/biz/db/mongodb"
	"user_center/be/biz/model/domain"
)

// UserStore is the persistence boundary for users. FindByEmail returns
// nil, nil when no user has the email. Insert surfaces unique index
// violations as errors recognised by errs.IsDuplicatedErr.
type UserStore interface {
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// NewDefaultStore returns the store for the configured driver over the
// connection opened by db.Init.
func NewDefaultStore(driver string) UserStore {
	if driver == config.DriverMongo {
		return NewUserStoreMongo(mongodb.GetCollection())
	}
	return NewUserStoreGorm(gormdb.GetDbConn())
}
