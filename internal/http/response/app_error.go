package response

// AppError 统一错误包装
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal 是否服务端错误（需 error 级别日志）
func (e *AppError) Internal() bool {
	return e != nil && e.Code >= CodeInternal
}

// WrapError 包装错误，非法业务码按 500 处理
func WrapError(code int, message string, err error) *AppError {
	if code <= CodeOK {
		code = CodeInternal
	}
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
