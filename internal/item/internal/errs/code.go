package errs

var (
	SystemError        = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 502002, Msg: "参数不合法"}
	PermissionDenied   = ErrorCode{Code: 502403, Msg: "没有权限"}
	NotFound           = ErrorCode{Code: 502404, Msg: "内容不存在"}
	DuplicatePermalink = ErrorCode{Code: 502003, Msg: "同名投稿已存在"}
	ItemReferenced     = ErrorCode{Code: 502004, Msg: "还有子项引用这个合集，不能删除"}
	// PageRedirect 页码越界，前端拿到后重定向到第一页
	PageRedirect = ErrorCode{Code: 502302, Msg: "页码超出范围"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
