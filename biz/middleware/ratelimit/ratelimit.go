package ratelimit

import (
	"context"
	"net/http"
	"strconv"

	"user_center/be/biz/config"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const (
	headerLimit      = "X-RateLimit-Limit"
	headerRemaining  = "X-RateLimit-Remaining"
	headerRetryAfter = "Retry-After"
)

// New limits requests per client ip on the configured paths. Other paths
// pass through. Redis failures fail open.
func New(client redis.Scripter, confList []config.RateLimitConf) app.HandlerFunc {
	rules := make(map[string]*Interceptor)
	for _, conf := range confList {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = NewInterceptor(client, conf.WindowSeconds, conf.Limit)
		}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		path := string(c.Request.URI().Path())
		interceptor, ok := rules[path]
		if !ok {
			c.Next(ctx)
			return
		}

		key := path + ":" + c.ClientIP()
		d, err := interceptor.Allow(ctx, key)
		if err != nil {
			hlog.CtxErrorf(ctx, "Rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		c.Header(headerLimit, strconv.FormatInt(d.Limit, 10))
		c.Header(headerRemaining, strconv.FormatInt(d.Remaining, 10))
		if !d.Allowed {
			hlog.CtxWarnf(ctx, "rate limited: %s", key)
			c.Header(headerRetryAfter, strconv.Itoa(int(d.RetryAfter.Seconds())))
			resp.AbortWithErr(c, errs.TooManyRequest, http.StatusTooManyRequests)
			return
		}

		c.Next(ctx)
	}
}
