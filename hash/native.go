package hash

import (
	"context"
	"crypto/sha1"
	"crypto/sha512"
	gohash "hash"

	sha256 "github.com/minio/sha256-simd"
)

type nativeDigester struct{}

// Native returns the Digester backed by the Go crypto implementations
func Native() Digester {
	return &nativeDigester{}
}

func newHash(identifier string) (gohash.Hash, bool) {
	switch Algorithm(identifier) {
	case SHA1:
		return sha1.New(), true
	case SHA256:
		return sha256.New(), true
	case SHA384:
		return sha512.New384(), true
	case SHA512:
		return sha512.New(), true
	}
	return nil, false
}

func (d *nativeDigester) Digest(ctx context.Context, identifier string, buf []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, ok := newHash(identifier)
	if !ok {
		return nil, &DigestError{Algorithm: identifier, Err: ErrUnknownAlgorithm}
	}
	if _, err := h.Write(buf); err != nil {
		return nil, &DigestError{Algorithm: identifier, Err: err}
	}
	return h.Sum(nil), nil
}
