package game

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies engine failures for callers.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindIllegalAction
	KindInsufficientResource
)

var errorKindNames = map[ErrorKind]string{
	KindNotFound:             "NOT_FOUND",
	KindIllegalAction:        "ILLEGAL_ACTION",
	KindInsufficientResource: "INSUFFICIENT_RESOURCE",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ERROR_KIND_%d", int(k))
}

// Error is returned by every engine operation. Validation failures are
// reported before any state is touched.
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Sentinels for errors.Is. Only the kind is compared.
var (
	ErrNotFound             = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrIllegalAction        = &Error{Kind: KindIllegalAction, Msg: "illegal action"}
	ErrInsufficientResource = &Error{Kind: KindInsufficientResource, Msg: "insufficient resource"}
)

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// GRPCStatus maps the error onto a gRPC status so request layers can return
// it unchanged.
func (e *Error) GRPCStatus() *status.Status {
	code := codes.Unknown
	switch e.Kind {
	case KindNotFound:
		code = codes.NotFound
	case KindIllegalAction:
		code = codes.FailedPrecondition
	case KindInsufficientResource:
		code = codes.ResourceExhausted
	}
	return status.New(code, e.Msg)
}

func notFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func illegal(format string, args ...interface{}) *Error {
	return &Error{Kind: KindIllegalAction, Msg: fmt.Sprintf(format, args...)}
}

func insufficient(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInsufficientResource, Msg: fmt.Sprintf(format, args...)}
}
