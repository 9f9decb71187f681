// Package checksum computes hexadecimal checksums of files, text, numbers,
// raw buffers and structured values. Each input is normalized into a byte
// sequence, digested by a hash.Digester and rendered as lowercase hex.
package checksum

import (
	"context"

	"github.com/fugue/checksum/hash"
	"github.com/sirupsen/logrus"
)

// Options used to configure a Checksummer
type Options struct {

	// Algorithm used for digests. Defaults to hash.Default (SHA-1).
	Algorithm hash.Algorithm

	// Digester computes the raw digest. Defaults to hash.Native().
	Digester hash.Digester

	// Logger receives debug output. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Checksummer computes checksums using one algorithm. It holds no mutable
// state and is safe for concurrent use.
type Checksummer struct {
	algorithm hash.Algorithm
	digester  hash.Digester
	logger    logrus.FieldLogger
}

// New returns a Checksummer configured with the given options
func New(opts Options) *Checksummer {
	c := &Checksummer{
		algorithm: opts.Algorithm.OrDefault(),
		digester:  opts.Digester,
		logger:    opts.Logger,
	}
	if c.digester == nil {
		c.digester = hash.Native()
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}
	return c
}

// Algorithm returns the algorithm used by this Checksummer
func (c *Checksummer) Algorithm() hash.Algorithm {
	return c.algorithm
}

// WithAlgorithm returns a copy of the Checksummer using another algorithm
func (c *Checksummer) WithAlgorithm(alg hash.Algorithm) *Checksummer {
	copied := *c
	copied.algorithm = alg.OrDefault()
	return &copied
}

// Sum classifies data and returns its checksum
func (c *Checksummer) Sum(ctx context.Context, data interface{}) (string, error) {
	in, err := Classify(data)
	if err != nil {
		c.logger.WithError(err).Debug("Unsupported input")
		return "", err
	}
	return c.SumInput(ctx, in)
}

// SumInput returns the checksum of a classified input. Errors from reading
// a file or from the Digester are returned unchanged.
func (c *Checksummer) SumInput(ctx context.Context, in Input) (string, error) {

	logger := c.logger.WithField("algorithm", c.algorithm.String())
	if resolved := deref(in); resolved != nil {
		logger = logger.WithField("input", resolved.Kind())
	}

	buf, err := Normalize(ctx, in)
	if err != nil {
		logger.WithError(err).Debug("Normalization failed")
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	digest, err := c.digester.Digest(ctx, c.algorithm.String(), buf)
	if err != nil {
		logger.WithError(err).Debug("Digest failed")
		return "", err
	}

	sum := Encode(digest)
	logger.WithFields(logrus.Fields{
		"bytes":    len(buf),
		"checksum": sum,
	}).Debug("Computed checksum")
	return sum, nil
}

// Sum returns the checksum of data using the native digester. An empty
// algorithm selects hash.Default.
func Sum(ctx context.Context, data interface{}, algorithm hash.Algorithm) (string, error) {
	return New(Options{Algorithm: algorithm}).Sum(ctx, data)
}
