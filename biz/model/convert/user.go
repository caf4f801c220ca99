package convert

import (
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.PasswordHash,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:       m.UserId,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func UserDomainToDocument(u *domain.User) *storage.UserDocument {
	if u == nil {
		return nil
	}
	return &storage.UserDocument{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func UserDocumentToDomain(d *storage.UserDocument) *domain.User {
	if d == nil {
		return nil
	}
	return &domain.User{
		UserID:       d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserDomainToResp drops the password hash.
func UserDomainToResp(u *domain.User) *dto.UserResp {
	if u == nil {
		return nil
	}
	return &dto.UserResp{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Unix(),
	}
}
