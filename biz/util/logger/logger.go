package logger

import (
	"context"
	"fmt"
	"io"

	"user_center/be/biz/config"
	"user_center/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog through logrus with json output.
func Init(conf config.LoggerConf) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})

	hl := &hlogLogrus{l: l}
	hl.SetOutput(newOutput(conf))

	hlog.SetLogger(hl)
	hlog.SetLevel(newLevel(conf))
}

var levels = map[hlog.Level]logrus.Level{
	hlog.LevelTrace:  logrus.TraceLevel,
	hlog.LevelDebug:  logrus.DebugLevel,
	hlog.LevelInfo:   logrus.InfoLevel,
	hlog.LevelNotice: logrus.InfoLevel,
	hlog.LevelWarn:   logrus.WarnLevel,
	hlog.LevelError:  logrus.ErrorLevel,
	hlog.LevelFatal:  logrus.FatalLevel,
}

type hlogLogrus struct {
	l *logrus.Logger
}

var _ hlog.FullLogger = (*hlogLogrus)(nil)

func (h *hlogLogrus) log(ctx context.Context, level hlog.Level, msg string) {
	entry := logrus.NewEntry(h.l)
	info := trace_info.FromContext(ctx)
	if info.LogId != "" {
		entry = entry.WithField("log_id", info.LogId)
	}
	if info.ClientIP != "" {
		entry = entry.WithField("client_ip", info.ClientIP)
	}
	if level == hlog.LevelNotice {
		entry = entry.WithField("notice", true)
	}
	entry.Log(levels[level], msg)
	if level == hlog.LevelFatal {
		h.l.Exit(1)
	}
}

func (h *hlogLogrus) SetLevel(level hlog.Level) {
	h.l.SetLevel(levels[level])
}

func (h *hlogLogrus) SetOutput(w io.Writer) {
	h.l.SetOutput(w)
}

func (h *hlogLogrus) Trace(v ...interface{}) { h.log(context.Background(), hlog.LevelTrace, fmt.Sprint(v...)) }
func (h *hlogLogrus) Debug(v ...interface{}) { h.log(context.Background(), hlog.LevelDebug, fmt.Sprint(v...)) }
func (h *hlogLogrus) Info(v ...interface{}) { h.log(context.Background(), hlog.LevelInfo, fmt.Sprint(v...)) }
func (h *hlogLogrus) Notice(v ...interface{}) { h.log(context.Background(), hlog.LevelNotice, fmt.Sprint(v...)) }
func (h *hlogLogrus) Warn(v ...interface{}) { h.log(context.Background(), hlog.LevelWarn, fmt.Sprint(v...)) }
func (h *hlogLogrus) Error(v ...interface{}) { h.log(context.Background(), hlog.LevelError, fmt.Sprint(v...)) }
func (h *hlogLogrus) Fatal(v ...interface{}) { h.log(context.Background(), hlog.LevelFatal, fmt.Sprint(v...)) }

func (h *hlogLogrus) Tracef(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) Debugf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) Infof(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) Noticef(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) Warnf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) Errorf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelError, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) Fatalf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelError, fmt.Sprintf(format, v...))
}

func (h *hlogLogrus) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelFatal, fmt.Sprintf(format, v...))
}
