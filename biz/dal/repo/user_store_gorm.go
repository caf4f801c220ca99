package repo

import (
	"context"
	"errors"

	"user_center/be/biz/model/convert"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/storage"

	"gorm.io/gorm"
)

type userStoreGorm struct {
	db *gorm.DB
}

func NewUserStoreGorm(db *gorm.DB) UserStore {
	return &userStoreGorm{db: db}
}

func (r *userStoreGorm) Insert(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *userStoreGorm) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}
