package errs

var (
	SystemError       = ErrorCode{Code: 501001, Msg: "系统错误"}
	DuplicateUsername = ErrorCode{Code: 501002, Msg: "用户名已被占用"}
	UserNotFound      = ErrorCode{Code: 501404, Msg: "用户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
