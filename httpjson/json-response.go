package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ofast-team/backend/srvcerror"
)

// ErrorResponse is the body of every failed request. Error holds either a
// single message or, for validation failures, the list of violations.
type ErrorResponse struct {
	Error any    `json:"error"`
	Code  string `json:"code,omitempty"`
}

// forwardedError is implemented by upstream errors whose status and body are
// relayed to the client unchanged.
type forwardedError interface {
	error
	ForwardedResponse() (statusCode int, body []byte)
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func WriteSuccessJson(w http.ResponseWriter, data any) {
	WriteJson(w, http.StatusOK, data)
}

func WriteErrorJson(w http.ResponseWriter, errMsg any, statusCode int, errCode string) {
	WriteJson(w, statusCode, ErrorResponse{
		Error: errMsg,
		Code:  errCode,
	})
}

func writeInternalErrorJson(w http.ResponseWriter) {
	WriteErrorJson(w,
		http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError,
		srvcerror.ErrCodeInternalServerError)
}

func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		attrs := []any{"error", err, "code", srvcErr.ErrorCode()}
		if srvcErr.DebugInfo() != nil {
			attrs = append(attrs, "debug", srvcErr.DebugInfo())
		}
		if srvcErr.HttpStatusCode() >= http.StatusInternalServerError {
			logger.Error("internal server error", attrs...)
		} else {
			logger.Warn("service error", attrs...)
		}
		var msg any = srvcErr.Error()
		if len(srvcErr.Details()) > 0 {
			msg = srvcErr.Details()
		}
		WriteErrorJson(w, msg, srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
		return
	}

	var fwdErr forwardedError
	if errors.As(err, &fwdErr) {
		statusCode, body := fwdErr.ForwardedResponse()
		logger.Warn("forwarding upstream error", "status", statusCode, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(body)
		return
	}

	logger.Error("internal server error", "error", err)
	writeInternalErrorJson(w)
}
