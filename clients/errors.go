package clients

import (
	"fmt"
	"net/http"
)

// ErrorDescriptor is the error payload the provisioning API nests under the
// "error" key of a failed response.
type ErrorDescriptor struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDescriptor `json:"error"`
}

// ResponseError is returned for every response outside the 2xx/3xx range.
type ResponseError struct {
	Response   *http.Response
	StatusCode int
	Code       string
	Message    string
}

func (err ResponseError) Error() string {
	return fmt.Sprintf("provisioning API error (%d %s): %s", err.StatusCode, err.Code, err.Message)
}

type NoUserAgentError struct {
	message string
}

func NewNoUserAgentError(message string) NoUserAgentError {
	return NoUserAgentError{message}
}

func (err NoUserAgentError) Error() string {
	return err.message
}
