package convert

import (
	"testing"
	"time"

	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/storage"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserConvert(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	u := &domain.User{
		UserID:       "u1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	assert.Equal(t, u, UserRecordToDomain(UserDomainToRecord(u)))

	doc := UserDomainToDocument(u)
	assert.Equal(t, u.PasswordHash, doc.Password)
	doc.ID = primitive.NewObjectID()
	back := UserDocumentToDomain(doc)
	assert.Equal(t, doc.ID.Hex(), back.UserID)
	assert.Equal(t, u.Email, back.Email)

	r := UserDomainToResp(u)
	assert.Equal(t, "u1", r.UserID)
	assert.Equal(t, now.Unix(), r.CreatedAt)

	assert.Nil(t, UserDomainToRecord(nil))
	assert.Nil(t, UserRecordToDomain((*storage.UserRecord)(nil)))
	assert.Nil(t, UserDocumentToDomain(nil))
	assert.Nil(t, UserDomainToResp(nil))
}
