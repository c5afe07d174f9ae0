package errs

var (
	SystemError  = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 504002, Msg: "参数非法"}
	PostNotFound = ErrorCode{Code: 504003, Msg: "帖子不存在"}
	// NotAuthor 修改和删除只有作者本人可以
	NotAuthor       = ErrorCode{Code: 504004, Msg: "无权操作"}
	CommentNotFound = ErrorCode{Code: 504005, Msg: "评论不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
