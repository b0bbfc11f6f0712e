package report

import "fmt"

// Enumeration of compile error kinds.  Every error produced while checking a
// Foo program carries exactly one of these kinds so that the driver (and
// tests) can discriminate failures without parsing message text.
const (
	KindUnexpectedToken = iota // The parser hit a token the grammar forbids.
	KindSymbolNotFound         // A path segment resolved to no visible binding.
	KindInvalidPathSegment     // A non-final path segment named a non-module.
	KindDuplicateDeclaration   // Two children of one scope share a name.
	KindInvalidItemKind        // A body operation targeted a non-function item.
)

// reprKind returns the display label for an error kind.
func reprKind(kind int) string {
	switch kind {
	case KindUnexpectedToken:
		return "syntax error"
	case KindSymbolNotFound:
		return "symbol error"
	case KindInvalidPathSegment:
		return "path error"
	case KindDuplicateDeclaration:
		return "declaration error"
	case KindInvalidItemKind:
		return "item error"
	default:
		return "error"
	}
}

// CompileError is an error in the input Foo program.  The span may be nil for
// errors with no sensible source location.
type CompileError struct {
	// The kind of the error.  Must be one of the enumerated error kinds.
	Kind int

	// The span over which the error occurs.
	Span *TextSpan

	// The error message.
	Message string
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error of the given kind.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}
