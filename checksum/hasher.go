package checksum

import (
	"context"

	"github.com/fugue/checksum/hash"
	"github.com/spf13/afero"
)

// Hasher is an interface for hashing objects, files, strings or bytes
// with a fixed algorithm
type Hasher interface {

	// Object returns the checksum of a given object
	Object(obj interface{}) (string, error)

	// File returns the checksum of a given file on disk
	File(path string) (string, error)

	// String returns the checksum of a given string
	String(s string) (string, error)

	// Bytes returns the checksum of a raw buffer
	Bytes(b []byte) (string, error)
}

type hasher struct {
	fs afero.Fs
	c  *Checksummer
}

// NewHasher returns a Hasher for the algorithm that reads files from fs.
// A nil fs uses the operating system filesystem.
func NewHasher(alg hash.Algorithm, fs afero.Fs) Hasher {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &hasher{fs: fs, c: New(Options{Algorithm: alg})}
}

// SHA1 returns a Hasher using SHA-1
func SHA1() Hasher { return NewHasher(hash.SHA1, nil) }

// SHA256 returns a Hasher using SHA-256
func SHA256() Hasher { return NewHasher(hash.SHA256, nil) }

// SHA384 returns a Hasher using SHA-384
func SHA384() Hasher { return NewHasher(hash.SHA384, nil) }

// SHA512 returns a Hasher using SHA-512
func SHA512() Hasher { return NewHasher(hash.SHA512, nil) }

func (h *hasher) Object(obj interface{}) (string, error) {
	return h.c.Sum(context.Background(), obj)
}

func (h *hasher) File(filePath string) (string, error) {
	file, err := h.fs.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return h.c.SumInput(context.Background(), NewFile(filePath, file))
}

func (h *hasher) String(s string) (string, error) {
	return h.c.SumInput(context.Background(), Text(s))
}

func (h *hasher) Bytes(b []byte) (string, error) {
	return h.c.SumInput(context.Background(), Buffer(b))
}
