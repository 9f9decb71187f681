package hash

import (
	"fmt"
	"strings"
)

// Algorithm selects a hash function. Its value is the identifier the
// platform digest primitive recognizes.
type Algorithm string

// Supported algorithms
const (
	SHA1   = Algorithm("SHA-1")
	SHA256 = Algorithm("SHA-256")
	SHA384 = Algorithm("SHA-384")
	SHA512 = Algorithm("SHA-512")
)

// Default is used whenever no algorithm is selected
const Default = SHA1

type algorithmInfo struct {
	name string
	size int
}

var table = map[Algorithm]algorithmInfo{
	SHA1:   {name: "SHA1", size: 20},
	SHA256: {name: "SHA256", size: 32},
	SHA384: {name: "SHA384", size: 48},
	SHA512: {name: "SHA512", size: 64},
}

// Algorithms returns all supported algorithms in order of digest size
func Algorithms() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA384, SHA512}
}

// ParseAlgorithm looks up an algorithm by identifier ("SHA-256") or by
// name ("sha256"), ignoring case. An empty string yields Default.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default, nil
	}
	for _, alg := range Algorithms() {
		if strings.EqualFold(s, string(alg)) || strings.EqualFold(s, alg.Name()) {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// OrDefault returns Default for the zero Algorithm
func (a Algorithm) OrDefault() Algorithm {
	if a == "" {
		return Default
	}
	return a
}

// Valid returns true if the algorithm is one of the supported set
func (a Algorithm) Valid() bool {
	_, ok := table[a]
	return ok
}

// Name returns the enumeration name, e.g. "SHA256"
func (a Algorithm) Name() string {
	if info, ok := table[a]; ok {
		return info.name
	}
	return string(a)
}

// Size returns the digest length in bytes, or zero if unknown
func (a Algorithm) Size() int {
	return table[a].size
}

// String returns the platform identifier
func (a Algorithm) String() string {
	return string(a)
}
