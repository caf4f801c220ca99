package main

import (
	"context"
	"flag"
	"time"

	be "user_center/be"
	"user_center/be/biz/config"
	"user_center/be/biz/db"
	"user_center/be/biz/service/user"
	"user_center/be/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	confDir := flag.String("conf_dir", "conf", "directory holding deploy.<mode>.yml")
	flag.Parse()

	mode := config.Mode()
	conf, err := config.Load(config.FilePath(*confDir, mode))
	if err != nil {
		hlog.Fatalf("load config err: %v", err)
	}
	logger.Init(conf.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Init(ctx, conf); err != nil {
		hlog.Fatalf("init db err: %v", err)
	}

	h := be.NewEngine(conf, user.NewDefault(conf))
	h.OnShutdown = append(h.OnShutdown, db.Close)

	hlog.Infof("user center starting, mode=%s addr=%s storage=%s", mode, conf.Server.Addr, conf.Storage.Driver)
	h.Spin()
}
