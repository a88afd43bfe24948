package slots

import "fmt"

// MissingParamsError reports a required filter absent from an aggregation
// request. No upstream call is issued once this is raised.
type MissingParamsError struct {
	Code    string
	Message string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingParamsError(msg string) error {
	return &MissingParamsError{
		Code:    "missingParams",
		Message: msg,
	}
}
