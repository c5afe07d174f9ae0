package errs

var (
	SystemError      = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 503002, Msg: "参数非法"}
	SolutionNotFound = ErrorCode{Code: 503003, Msg: "方案不存在"}
	// Forbidden 只有教师和校领导能维护目录
	Forbidden = ErrorCode{Code: 503004, Msg: "无权操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
