package checksum

import (
	"fmt"
	"strings"
)

// SupportedTypes names the input shapes that can be checksummed
var SupportedTypes = []string{
	"binary-file",
	"text",
	"number",
	"binary-buffer",
	"array",
	"object",
}

// UnsupportedTypeError is returned when a value matches none of the
// supported input shapes. It is raised before any I/O or hashing.
type UnsupportedTypeError struct {
	Type string
	Err  error
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("data type %s not supported (supported types: %s)",
		e.Type, strings.Join(SupportedTypes, ", "))
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying serializer error, if any
func (e *UnsupportedTypeError) Unwrap() error { return e.Err }
