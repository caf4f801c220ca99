package be

import (
	"user_center/be/biz/handler"
	_ "user_center/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

func register(r *server.Hertz, users *handler.UserHandler) {
	r.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	g := r.Group("/users")
	g.POST("", users.CreateUser)
	g.POST("/find", users.FindUser)
}
