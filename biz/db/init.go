package db

import (
	"context"

	"user_center/be/biz/config"
	"user_center/be/biz/db/gormdb"
	"user_center/be/biz/db/mongodb"
	"user_center/be/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Init opens the user store selected by the config and, when configured,
// the redis client used for rate limiting.
func Init(ctx context.Context, conf *config.ServiceConf) error {
	switch conf.Storage.Driver {
	case config.DriverMongo:
		if err := mongodb.Init(ctx, &conf.Mongo); err != nil {
			return err
		}
	default:
		if err := gormdb.Init(conf); err != nil {
			return err
		}
	}

	if conf.RedisEnabled() {
		if err := redis.Init(ctx, &conf.Redis); err != nil {
			return err
		}
	}
	return nil
}

func Close(ctx context.Context) {
	if err := mongodb.Close(ctx); err != nil {
		hlog.CtxErrorf(ctx, "close mongo err: %v", err)
	}
	if err := gormdb.Close(); err != nil {
		hlog.CtxErrorf(ctx, "close gorm err: %v", err)
	}
	if err := redis.Close(); err != nil {
		hlog.CtxErrorf(ctx, "close redis err: %v", err)
	}
}
