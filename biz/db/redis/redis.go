package redis

import (
	"context"
	"fmt"

	"user_center/be/biz/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func Init(ctx context.Context, conf *config.RedisConf) error {
	cli := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return errors.Wrap(err, "ping redis")
	}
	rdb = cli
	return nil
}

func GetRedisClient() *redis.Client {
	return rdb
}

func Close() error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
