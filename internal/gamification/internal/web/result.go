package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/nird-project/nird/internal/gamification/internal/errs"
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
	unknownBadgeResult = ginx.Result{
		Code: errs.UnknownBadge.Code,
		Msg:  errs.UnknownBadge.Msg,
	}
	badgeAlreadyEarnedResult = ginx.Result{
		Code: errs.BadgeAlreadyEarned.Code,
		Msg:  errs.BadgeAlreadyEarned.Msg,
	}
)
