package mindbody

import "fmt"

// UpstreamError reports a non-2xx or malformed response from the scheduling API.
type UpstreamError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %d (%s): %s", e.HTTPStatus, e.Code, e.Message)
}

func NewUpstreamError(status int, code, msg string) error {
	if code == "" {
		code = "upstreamError"
	}
	return &UpstreamError{
		HTTPStatus: status,
		Code:       code,
		Message:    msg,
	}
}

// AuthError reports a failed token acquisition.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAuthError(msg string) error {
	return &AuthError{
		Code:    "authError",
		Message: msg,
	}
}

// MissingCredentialsError reports that the token provider was never configured
// with upstream credentials.
type MissingCredentialsError struct {
	Code    string
	Message string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingCredentialsError(msg string) error {
	return &MissingCredentialsError{
		Code:    "missingCredentials",
		Message: msg,
	}
}
