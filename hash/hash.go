package hash

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm indicates an algorithm identifier that is not
// recognized by a Digester or by ParseAlgorithm
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Digester is the platform digest primitive. It computes the binary
// digest of buf using the algorithm named by identifier.
type Digester interface {

	// Digest returns the raw digest of buf. It fails with a *DigestError
	// if the identifier is not recognized.
	Digest(ctx context.Context, identifier string, buf []byte) ([]byte, error)
}

// DigesterFunc adapts a function to the Digester interface
type DigesterFunc func(ctx context.Context, identifier string, buf []byte) ([]byte, error)

// Digest calls f(ctx, identifier, buf)
func (f DigesterFunc) Digest(ctx context.Context, identifier string, buf []byte) ([]byte, error) {
	return f(ctx, identifier, buf)
}

// DigestError is returned by a Digester that cannot compute a digest
type DigestError struct {
	Algorithm string
	Err       error
}

func (e *DigestError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("digest %s failed", e.Algorithm)
	}
	return fmt.Sprintf("digest %s failed: %s", e.Algorithm, e.Err)
}

// Unwrap returns the underlying cause
func (e *DigestError) Unwrap() error { return e.Err }
