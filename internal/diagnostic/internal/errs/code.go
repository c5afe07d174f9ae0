package errs

var (
	SystemError = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 502002, Msg: "参数非法"}
	// Forbidden 只能看自己的诊断报告
	Forbidden = ErrorCode{Code: 502003, Msg: "无权访问"}
	DiagnosticNotFound = ErrorCode{Code: 502004, Msg: "诊断报告不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
