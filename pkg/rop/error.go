package rop

import (
	"fmt"
	"reflect"
	"strconv"
)

// Error is an immutable, structured description of an expected failure.
// Every With* method returns a modified copy and leaves the receiver untouched,
// so an Error can be shared freely between goroutines.
type Error struct {
	code       string
	message    string
	status     int
	category   Category
	extensions Extensions
	inner      *Error
	// native error captured by FromNative, reachable through Unwrap only
	cause error
}

var _ error = Error{}

// ErrorSummary is the code/message/status triple recorded for every failure
// folded into an aggregated error.
type ErrorSummary struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewError builds an Error of the given category. Empty code and message fall
// back to the category defaults, a zero status to the category status.
func NewError(category Category, status int, code, message string, ext Extensions) Error {
	info := category.info()
	if code == "" {
		code = info.code
	} else {
		code = NormalizeCode(code)
	}
	if message == "" {
		message = info.message
	}
	if status == 0 {
		status = info.status
	}
	return Error{
		code:       code,
		message:    message,
		status:     status,
		category:   category,
		extensions: ext.clone(),
	}
}

func newCategorized(category Category, message string, code []string) Error {
	c := ""
	if len(code) > 0 {
		c = code[0]
	}
	return NewError(category, 0, c, message, nil)
}

// Validation reports invalid input (422).
func Validation(message string, code ...string) Error {
	return newCategorized(CategoryValidation, message, code)
}

// NotFound reports a missing resource (404).
func NotFound(message string, code ...string) Error {
	return newCategorized(CategoryNotFound, message, code)
}

// Unauthorized reports missing or invalid authentication (401).
func Unauthorized(message string, code ...string) Error {
	return newCategorized(CategoryUnauthorized, message, code)
}

// Forbidden reports an authenticated caller lacking permission (403).
func Forbidden(message string, code ...string) Error {
	return newCategorized(CategoryForbidden, message, code)
}

// Conflict reports a state conflict such as a uniqueness violation (409).
func Conflict(message string, code ...string) Error {
	return newCategorized(CategoryConflict, message, code)
}

// TooManyRequests reports rate limiting (429).
func TooManyRequests(message string, code ...string) Error {
	return newCategorized(CategoryTooManyRequests, message, code)
}

// Unexpected reports an unexpected failure described only by a message (500).
func Unexpected(message string, code ...string) Error {
	return newCategorized(CategoryUnexpected, message, code)
}

// Custom builds an error outside the predefined categories. The status is
// required because Custom has no conventional one.
func Custom(status int, code, message string) Error {
	return NewError(CategoryCustom, status, code, message, nil)
}

// FromNative captures a native Go error as an Unexpected Error. The message is
// err.Error(); the dynamic type and message land in the exceptionType and
// exceptionMessage extensions. Joined errors also record exceptionMessages.
func FromNative(err error, code ...string) Error {
	if IsNil(err) {
		return newCategorized(CategoryUnexpected, "", code)
	}
	ext := Ext(
		"exceptionType", fmt.Sprintf("%T", err),
		"exceptionMessage", err.Error(),
	)
	if joined := GetErrors(err); len(joined) > 1 {
		msgs := make([]string, 0, len(joined))
		for _, e := range joined {
			msgs = append(msgs, e.Error())
		}
		ext["exceptionMessages"] = msgs
	}
	c := ""
	if len(code) > 0 {
		c = code[0]
	}
	e := NewError(CategoryUnexpected, 0, c, err.Error(), ext)
	e.cause = err
	return e
}

// Cancelled reports a step aborted by context cancellation or deadline.
func Cancelled(err error) Error {
	return FromNative(err, "OPERATION_CANCELLED")
}

// ValidationFailures builds the single aggregated Validation error a rule
// engine hands back: the errors extension maps each field to its messages.
func ValidationFailures(fields map[string][]string) Error {
	cp := make(map[string][]string, len(fields))
	count := 0
	for k, v := range fields {
		cp[k] = append([]string(nil), v...)
		count += len(v)
	}
	return NewError(CategoryValidation, 0, "", "One or more validation errors occurred.",
		Ext("errors", cp, "count", count))
}

func (e Error) Code() string       { return e.orDefault().code }
func (e Error) Message() string    { return e.orDefault().message }
func (e Error) Status() int        { return e.orDefault().status }
func (e Error) Category() Category { return e.orDefault().category }

// Extensions returns a copy of the extension map; never nil.
func (e Error) Extensions() Extensions { return e.extensions.clone() }

// Extension looks up a single extension value.
func (e Error) Extension(key string) (any, bool) {
	v, ok := e.extensions[key]
	return v, ok
}

// Inner returns the chained inner error, if any.
func (e Error) Inner() (Error, bool) {
	if e.inner == nil {
		return Error{}, false
	}
	return *e.inner, true
}

// InnerChain lists the inner errors from the outermost to the innermost.
func (e Error) InnerChain() []Error {
	var chain []Error
	for in := e.inner; in != nil; in = in.inner {
		chain = append(chain, *in)
	}
	return chain
}

// Summary returns the code/message/status triple of e.
func (e Error) Summary() ErrorSummary {
	return ErrorSummary{Code: e.Code(), Message: e.Message(), Status: e.Status()}
}

func (e Error) WithMessage(message string) Error {
	if message == "" {
		return e
	}
	cp := e.orDefault()
	cp.message = message
	return cp
}

func (e Error) WithCode(code string) Error {
	if code == "" {
		return e
	}
	cp := e.orDefault()
	cp.code = NormalizeCode(code)
	return cp
}

func (e Error) WithStatus(status int) Error {
	cp := e.orDefault()
	cp.status = status
	return cp
}

// WithExtensions merges ext over the existing extensions.
func (e Error) WithExtensions(ext Extensions) Error {
	cp := e.orDefault()
	cp.extensions = e.extensions.Merge(ext)
	return cp
}

// With sets a single extension.
func (e Error) With(key string, value any) Error {
	cp := e.orDefault()
	cp.extensions = e.extensions.Set(key, value)
	return cp
}

// WithInner chains inner below e. inner is already complete, so the chain
// can never form a cycle.
func (e Error) WithInner(inner Error) Error {
	cp := e.orDefault()
	in := inner
	cp.inner = &in
	return cp
}

// Equal reports structural equality, inner chain included. The native cause
// kept by FromNative is not compared.
func (e Error) Equal(other Error) bool {
	a, b := e.orDefault(), other.orDefault()
	if a.code != b.code || a.message != b.message || a.status != b.status || a.category != b.category {
		return false
	}
	if len(a.extensions) != len(b.extensions) {
		return false
	}
	if len(a.extensions) > 0 && !reflect.DeepEqual(map[string]any(a.extensions), map[string]any(b.extensions)) {
		return false
	}
	switch {
	case a.inner == nil && b.inner == nil:
		return true
	case a.inner == nil || b.inner == nil:
		return false
	}
	return a.inner.Equal(*b.inner)
}

// Error implements the error interface as "CODE: message[: inner]".
func (e Error) Error() string {
	d := e.orDefault()
	s := d.code + ": " + d.message
	if d.inner != nil {
		s += ": " + d.inner.Error()
	}
	return s
}

// Unwrap exposes the inner error and, for errors built by FromNative, the
// native cause to errors.Is and errors.As.
func (e Error) Unwrap() []error {
	var errs []error
	if e.inner != nil {
		errs = append(errs, *e.inner)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// Is matches another Error with the same code and category.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return e.Code() == t.Code() && e.Category() == t.Category()
}

// GoString renders the fields for %#v.
func (e Error) GoString() string {
	return "rop.Error{" + e.Category().String() + " " + strconv.Itoa(e.Status()) + " " + e.Error() + "}"
}

// the zero Error only appears inside a zero Result
var uninitialized = Error{
	code:     "UNINITIALIZED_RESULT",
	message:  "The result was never initialized.",
	status:   500,
	category: CategoryUnexpected,
}

func (e Error) orDefault() Error {
	if e.code == "" {
		return uninitialized
	}
	return e
}

