package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes of glyph line applications
const (
	NOERROR       int = 0
	EMISSING      int = 122 // font or glyph not found
	EINVALID      int = 123 // input does not parse or validate
	EINTERNAL     int = 125 // internal error
	EPRECONDITION int = 126 // caller broke a precondition of an operation
)

var codeText = map[int]string{
	NOERROR:       "OK",
	EMISSING:      "not found",
	EINVALID:      "invalid",
	EINTERNAL:     "internal error",
	EPRECONDITION: "precondition violated",
}

func textOf(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error carrying a code and a message meant for users.
// The error it has been created from stays reachable with errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WrapError wraps err into an AppError with a code and a user message.
// A nil err is replaced by an error stating the code's text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(textOf(code))
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, v...), Cause: err}
}

// Error creates an AppError from scratch.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code of the first AppError in the chain of err:
// NOERROR for nil, EINTERNAL for errors without a code.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e *AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// UserMessage returns the user message of err, falling back to the text of
// its code. It returns "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *AppError
	if errors.As(err, &e) {
		return e.Message
	}
	return textOf(Code(err))
}

// UserError reports an error on stderr.
func UserError(err error) {
	var e *AppError
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.Code, e.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
