package trace_info

import (
	"context"
)

// Info is the per-request data attached to every log line.
type Info struct {
	LogId    string
	ClientIP string
}

type infoKey struct{}

func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

func FromContext(ctx context.Context) Info {
	info, _ := ctx.Value(infoKey{}).(Info)
	return info
}

func WithLogId(ctx context.Context, logId string) context.Context {
	info := FromContext(ctx)
	info.LogId = logId
	return WithInfo(ctx, info)
}

func GetLogId(ctx context.Context) string {
	return FromContext(ctx).LogId
}
