package services

// Error kinds surfaced to handlers. Each maps to one HTTP status:
// NotFound→404, PermissionDenied→403, InvalidInput→400, ExportFailure→500.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindPermissionDenied
	KindInvalidInput
	KindExportFailure
)

// Error is a client-facing failure with a stable machine code and optional
// per-field details. Unexpected storage errors are returned raw and reported
// as generic 500s at the boundary.
type Error struct {
	Kind    ErrorKind
	Code    string
	Details any
}

func (e *Error) Error() string { return e.Code }

func NotFoundError(code string) *Error {
	return &Error{Kind: KindNotFound, Code: code}
}

func PermissionDeniedError(code string) *Error {
	return &Error{Kind: KindPermissionDenied, Code: code}
}

func InvalidInputError(code string, details any) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Details: details}
}

func ExportFailureError(code string) *Error {
	return &Error{Kind: KindExportFailure, Code: code}
}

// KindOf returns the error kind, or ok=false for unclassified errors.
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
