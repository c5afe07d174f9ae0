package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/nird-project/nird/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidEmailOrPasswordResult = ginx.Result{
		Code: errs.InvalidEmailOrPassword.Code,
		Msg:  errs.InvalidEmailOrPassword.Msg,
	}
)
