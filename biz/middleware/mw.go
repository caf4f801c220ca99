package middleware

import (
	"user_center/be/biz/config"
	"user_center/be/biz/db/redis"
	"user_center/be/biz/middleware/accesslog"
	"user_center/be/biz/middleware/cors"
	"user_center/be/biz/middleware/ratelimit"
	"user_center/be/biz/middleware/recovery"
	"user_center/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite(conf *config.ServiceConf) []app.HandlerFunc {
	suite := []app.HandlerFunc{
		recovery.New(),      // panic handler
		trace.New(),         // 链路ID
		accesslog.New(),     // 接口日志
		cors.New(conf.CORS), // 跨域请求
	}
	if conf.RedisEnabled() {
		suite = append(suite, ratelimit.New(redis.GetRedisClient(), conf.RateLimit)) // 限流
	}
	return suite
}
