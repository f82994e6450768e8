package errorx

import "fmt"

type Code int

// Unknown is the generic fallback shown to the user when the backend gives no
// usable message.
var Unknown = Error{Code: 100000, Message: "操作失败"}

const (
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Unavailable     Code = 100004
	Internal        Code = 100005
	TooManyRequests Code = 100006
)

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
