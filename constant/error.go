package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidCredential
	ErrInvalidOTP
	ErrWorkflowNotFound
	ErrInvalidWorkflowState
	ErrPasswordMismatch
	ErrNotificationFailed
	ErrTooManyAttempts
	ErrResendTooSoon
	ErrClassInactive
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "email already registered",
	ErrInvalidCredential:    "invalid email or password",
	ErrInvalidOTP:           "incorrect otp",
	ErrWorkflowNotFound:     "session expired, please start again",
	ErrInvalidWorkflowState: "action not allowed at this step",
	ErrPasswordMismatch:     "passwords do not match",
	ErrNotificationFailed:   "could not send the code, please try resending",
	ErrTooManyAttempts:      "too many incorrect attempts, please start again",
	ErrResendTooSoon:        "please wait before requesting a new code",
	ErrClassInactive:        "class is not accepting feedback",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidCredential:    http.StatusUnauthorized,
	ErrInvalidOTP:           http.StatusBadRequest,
	ErrWorkflowNotFound:     http.StatusSeeOther,
	ErrInvalidWorkflowState: http.StatusConflict,
	ErrPasswordMismatch:     http.StatusBadRequest,
	ErrNotificationFailed:   http.StatusServiceUnavailable,
	ErrTooManyAttempts:      http.StatusTooManyRequests,
	ErrResendTooSoon:        http.StatusTooManyRequests,
	ErrClassInactive:        http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidCredential:    "0006",
	ErrInvalidOTP:           "0007",
	ErrWorkflowNotFound:     "0008",
	ErrInvalidWorkflowState: "0009",
	ErrPasswordMismatch:     "0010",
	ErrNotificationFailed:   "0011",
	ErrTooManyAttempts:      "0012",
	ErrResendTooSoon:        "0013",
	ErrClassInactive:        "0014",
}
