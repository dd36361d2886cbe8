package rdconv

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLink reports an anchor with an unexpected attribute,
	// link text other than the "(link)" placeholder, or an anchor left open.
	ErrMalformedLink = errors.New("malformed link")

	// ErrUnknownTag reports an element outside the supported vocabulary.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrNestedElement reports an anchor inside an anchor or a row inside a row.
	ErrNestedElement = errors.New("nested element")
)

// TranslateError locates a translation failure in the source document
type TranslateError struct {
	Line  int    // 1-based line of the offending token
	Token string // Tag name or text that failed
	Err   error  // One of the Err* sentinels, possibly wrapped
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("line %d: %v (near %q)", e.Line, e.Err, e.Token)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}
