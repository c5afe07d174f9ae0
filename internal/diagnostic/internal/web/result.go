package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/nird-project/nird/internal/diagnostic/internal/errs"
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
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.DiagnosticNotFound.Code,
		Msg:  errs.DiagnosticNotFound.Msg,
	}
)
