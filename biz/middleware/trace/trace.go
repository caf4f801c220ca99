package trace

import (
	"context"

	"user_center/be/biz/util/id_gen"
	"user_center/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	HeaderKeyLogId = "X-Log-ID"
)

// New reuses the caller's X-Log-ID or mints one and echoes it back. The id
// and the client ip are attached to ctx for logging.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(HeaderKeyLogId)
		if logID == "" {
			logID = id_gen.NewID()
		}
		ctx = trace_info.WithInfo(ctx, trace_info.Info{LogId: logID, ClientIP: c.ClientIP()})
		c.Header(HeaderKeyLogId, logID)
		c.Next(ctx)
	}
}
