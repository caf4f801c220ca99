package mongodb

import (
	"context"

	"user_center/be/biz/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client     *mongo.Client
	collection *mongo.Collection
)

func Init(ctx context.Context, conf *config.MongoConf) error {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
	if err != nil {
		return errors.Wrap(err, "connect mongo")
	}
	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return errors.Wrap(err, "ping mongo")
	}

	coll := cli.Database(conf.Database).Collection(conf.Collection)
	if err := EnsureIndexes(ctx, coll); err != nil {
		_ = cli.Disconnect(ctx)
		return err
	}

	client = cli
	collection = coll
	return nil
}

// EnsureIndexes creates the unique email index the user store relies on.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	return errors.Wrap(err, "create email index")
}

func GetCollection() *mongo.Collection {
	return collection
}

func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
