package errs

var (
	SystemError        = ErrorCode{Code: 505001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 505002, Msg: "参数非法"}
	UnknownBadge       = ErrorCode{Code: 505003, Msg: "徽章不存在"}
	BadgeAlreadyEarned = ErrorCode{Code: 505004, Msg: "徽章已经获得过了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
