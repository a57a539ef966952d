package server

import (
	"encoding/json"
	"net/http"
)

const (
	codeReadFailed          = "read_failed"
	codeMalformedInput      = "malformed_input"
	codeInvalidRequest      = "invalid_request"
	codeMissingFile         = "missing_file"
	codeInvalidFileType     = "invalid_file_type"
	codeUnauthorized        = "unauthorized"
	codeCompetitionNotFound = "competition_not_found"
	codeRemoteUnavailable   = "remote_unavailable"
	codeUpstreamError       = "upstream_error"
	codeRateLimited         = "rate_limited"
	codeNotFound            = "not_found"
	codeMethodNotAllowed    = "method_not_allowed"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
