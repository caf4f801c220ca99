package resp

import (
	"net/http"

	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

var httpStatus = map[int32]int{
	errs.ParamError.Code():           http.StatusBadRequest,
	errs.TooManyRequest.Code():       http.StatusTooManyRequests,
	errs.UserNotFound.Code():         http.StatusNotFound,
	errs.WrongPassword.Code():        http.StatusUnauthorized,
	errs.EmailAlreadyInUse.Code():    http.StatusConflict,
	errs.InternalStorageError.Code(): http.StatusInternalServerError,
}

// StatusOf maps a business error to its http status; unmapped errors are 500.
func StatusOf(bizErr errs.Error) int {
	if bizErr == nil {
		return http.StatusOK
	}
	if status, ok := httpStatus[bizErr.Code()]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func respWithErr(c *app.RequestContext, status int, data any, err error) {
	if err == nil {
		c.JSON(status, &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		})
		return
	}

	if bizErr, ok := err.(errs.Error); ok {
		c.JSON(StatusOf(bizErr), &dto.CommonResp{
			Success: false,
			Code:    int(bizErr.Code()),
			Message: bizErr.Msg(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, &dto.CommonResp{
		Success: false,
		Code:    int(errs.ServerError.Code()),
		Message: errs.ServerError.Msg(),
	})
}

func SuccessResp(c *app.RequestContext, data any) {
	respWithErr(c, http.StatusOK, data, nil)
}

func CreatedResp(c *app.RequestContext, data any) {
	respWithErr(c, http.StatusCreated, data, nil)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	respWithErr(c, StatusOf(bizErr), nil, bizErr)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}
