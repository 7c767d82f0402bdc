package errs

var (
	SystemError  = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 503002, Msg: "参数不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
