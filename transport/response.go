package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/utils/errors"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Detail   string      `json:"detail,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorWithData(w, err, nil)
}

// writeErrorWithData answers with the error envelope and still carries data,
// e.g. the workflow token when only the email dispatch failed. A redirect is
// always echoed in the body; Location is only set on 3xx statuses.
func writeErrorWithData(w http.ResponseWriter, err error, data interface{}) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	status := ce.ErrorHTTPCode()
	if ce.Redirect() != "" && status >= 300 && status < 400 {
		w.Header().Set("Location", ce.Redirect())
	}

	writeJSON(w, status, Response{
		Code:     ce.ErrorCode(),
		Message:  constant.ErrorTypeMessage[ce.Type()],
		Detail:   ce.Detail(),
		Redirect: ce.Redirect(),
		Data:     data,
	})
}
