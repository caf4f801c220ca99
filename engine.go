package be

import (
	"user_center/be/biz/config"
	"user_center/be/biz/handler"
	"user_center/be/biz/middleware"
	"user_center/be/biz/service/user"
	"user_center/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// NewEngine builds the http server without starting it.
func NewEngine(conf *config.ServiceConf, svc user.Service) *server.Hertz {
	h := server.New(
		server.WithHostPorts(conf.Server.Addr),
		server.WithCustomValidatorFunc(validate.New().Validate),
	)
	h.Use(middleware.Suite(conf)...)
	register(h, handler.NewUserHandler(svc))
	return h
}
