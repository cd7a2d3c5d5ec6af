package errors

import "github.com/srisatyasai136/review/constant"

// CustomError is the error type returned by the application layer. Transport
// maps it to an HTTP status and a response envelope.
type CustomError struct {
	errType  constant.ErrorType
	detail   string
	redirect string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return constant.ErrorTypeMessage[c.errType] + ": " + c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Detail is the field level message attached to validation errors.
func (c CustomError) Detail() string {
	return c.detail
}

// Redirect is the entry point the client should go back to, if any.
func (c CustomError) Redirect() string {
	return c.redirect
}

// Is reports whether target is a CustomError of the same type, ignoring detail
// and redirect.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return t.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetDetailError(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

func SetRedirectError(errorType constant.ErrorType, redirect string) CustomError {
	return CustomError{
		errType:  errorType,
		redirect: redirect,
	}
}
