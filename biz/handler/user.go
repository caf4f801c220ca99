package handler

import (
	"context"
	"net/http"

	"user_center/be/biz/model/convert"
	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/service/user"
	"user_center/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUser 用户注册接口
//
//	@Tags			user
//	@Summary		用户注册接口
//	@Description	创建用户, 密码以bcrypt摘要保存
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.CreateUserReq	true	"create user request body"
//	@Success		201	{object}	dto.CommonResp{data=dto.UserResp}
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		409	{object}	dto.CommonResp
//	@Failure		500	{object}	dto.CommonResp
//	@Router			/users [POST]
func (h *UserHandler) CreateUser(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.CreateUser(ctx, &req)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	hlog.CtxInfof(ctx, "user created: %s", u.UserID)
	resp.CreatedResp(c, convert.UserDomainToResp(u))
}

// FindUser 用户认证接口
//
//	@Tags			user
//	@Summary		用户认证接口
//	@Description	按邮箱查找用户并校验密码
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.FindUserReq	true	"find user request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.UserResp}
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		401	{object}	dto.CommonResp
//	@Failure		404	{object}	dto.CommonResp
//	@Router			/users/find [POST]
func (h *UserHandler) FindUser(ctx context.Context, c *app.RequestContext) {
	var req dto.FindUserReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.GetUser(ctx, &req)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, convert.UserDomainToResp(u))
}
