// Package apperrors provides chained application errors. A sentinel is created
// with New and refined with Msg or Err. Every derived error still matches its
// ancestors through errors.Is, and the HTTP status code is inherited along the
// chain.
package apperrors

import (
	"errors"
	"strings"
)

type Error interface {
	error
	Unwrap() []error
	// New derives a sentinel with its own message.
	New(msg string) Error
	// Msg derives an error that replaces the message.
	Msg(msg string) Error
	// Err derives an error that keeps the message and records causes.
	Err(err ...error) Error
	// MsgErr combines Msg and Err.
	MsgErr(msg string, err ...error) Error
	SetStatusCode(code int) Error
	StatusCode() int
	SetExpandError(expand bool) Error
	// ErrorAll returns the message followed by every cause.
	ErrorAll() string
}

type appError struct {
	msg        string
	parent     *appError
	causes     []error
	statusCode int
	expand     bool
}

var _ Error = (*appError)(nil)

func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	if e.expandError() && len(e.causes) > 0 {
		return e.ErrorAll()
	}
	return e.msg
}

func (e *appError) ErrorAll() string {
	parts := []string{e.msg}
	for _, c := range e.causes {
		if c == nil {
			continue
		}
		parts = append(parts, c.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *appError) Unwrap() []error {
	var errs []error
	if e.parent != nil {
		errs = append(errs, e.parent)
	}
	for _, c := range e.causes {
		if c != nil {
			errs = append(errs, c)
		}
	}
	return errs
}

func (e *appError) derive(msg string, causes []error) *appError {
	return &appError{
		msg:    msg,
		parent: e,
		causes: causes,
	}
}

func (e *appError) New(msg string) Error {
	return e.derive(msg, nil)
}

func (e *appError) Msg(msg string) Error {
	return e.derive(msg, nil)
}

func (e *appError) Err(err ...error) Error {
	return e.derive(e.msg, err)
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	return e.derive(msg, err)
}

// SetStatusCode sets the code in place; call it only while declaring sentinels.
func (e *appError) SetStatusCode(code int) Error {
	e.statusCode = code
	return e
}

func (e *appError) StatusCode() int {
	for p := e; p != nil; p = p.parent {
		if p.statusCode != 0 {
			return p.statusCode
		}
	}
	return 0
}

// SetExpandError makes Error() include the causes. Like SetStatusCode it
// mutates the receiver.
func (e *appError) SetExpandError(expand bool) Error {
	e.expand = expand
	return e
}

func (e *appError) expandError() bool {
	for p := e; p != nil; p = p.parent {
		if p.expand {
			return true
		}
	}
	return false
}

// StatusCodeOf walks err for the first apperrors.Error carrying a status code.
func StatusCodeOf(err error, fallback int) int {
	var appErr Error
	if errors.As(err, &appErr) {
		if code := appErr.StatusCode(); code != 0 {
			return code
		}
	}
	return fallback
}
