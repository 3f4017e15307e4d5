package serverutils

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type BaseResponse[T any] struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    T            `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func ErrorResponse(code int, message string, errs ...FieldError) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  errs,
	}
}
