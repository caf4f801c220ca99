package repo

import (
	"context"
	"errors"
	"time"

	"user_center/be/biz/model/convert"
	"user_center/be/biz/model/domain"
	"user_center/be/biz/model/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userStoreMongo struct {
	coll *mongo.Collection
}

func NewUserStoreMongo(coll *mongo.Collection) UserStore {
	return &userStoreMongo{coll: coll}
}

func (r *userStoreMongo) Insert(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc := convert.UserDomainToDocument(u)
	doc.ID = primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc.CreatedAt, doc.UpdatedAt = now, now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return convert.UserDocumentToDomain(doc), nil
}

func (r *userStoreMongo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc storage.UserDocument
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserDocumentToDomain(&doc), nil
}
