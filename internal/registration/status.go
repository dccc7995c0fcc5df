package registration

import (
	"errors"
	"fmt"
	"net/http"
)

type Status struct {
	Text  string `json:"message"`
	Color string `json:"color"`
}

var (
	StatusSuccess = Status{Text: "Registration successful!", Color: "green"}
	StatusFailure = Status{Text: "Error during registration!", Color: "red"}
)

// StatusFor maps the outcome of a submission to what the user sees. All
// failures look the same.
func StatusFor(err error) Status {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}

// RequestFailure covers network errors and non-2xx responses alike.
// StatusCode is zero when no response arrived.
type RequestFailure struct {
	StatusCode int
	Err        error
}

func (f *RequestFailure) Error() string {
	if f.Err != nil {
		return "registration request failed: " + f.Err.Error()
	}
	return fmt.Sprintf("registration request failed: unexpected status %d %s",
		f.StatusCode, http.StatusText(f.StatusCode))
}

func (f *RequestFailure) Unwrap() error {
	return f.Err
}

func IsRequestFailure(err error) bool {
	var f *RequestFailure
	return errors.As(err, &f)
}
