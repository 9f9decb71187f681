package hash

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNativeDigest(t *testing.T) {
	// echo -n "1234" | shasum -a <N>

	expected := map[Algorithm]string{
		SHA1:   "7110eda4d09e062aa5e4a390b0a572ac0d2c0220",
		SHA256: "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4",
	}

	ctx := context.Background()
	d := Native()

	for alg, value := range expected {
		digest, err := d.Digest(ctx, string(alg), []byte("1234"))
		require.Nil(t, err)
		require.Equal(t, value, hex.EncodeToString(digest))
	}

	for _, alg := range Algorithms() {
		digest, err := d.Digest(ctx, string(alg), nil)
		require.Nil(t, err)
		require.Len(t, digest, alg.Size())
	}
}

func TestNativeUnknownAlgorithm(t *testing.T) {

	_, err := Native().Digest(context.Background(), "MD5", []byte("1234"))
	require.NotNil(t, err)

	var digestErr *DigestError
	require.True(t, errors.As(err, &digestErr))
	require.Equal(t, "MD5", digestErr.Algorithm)
	require.True(t, errors.Is(err, ErrUnknownAlgorithm))
	require.Equal(t, "digest MD5 failed: unknown algorithm", err.Error())
}

func TestNativeCancelled(t *testing.T) {

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Native().Digest(ctx, string(SHA1), []byte("1234"))
	require.Equal(t, context.Canceled, err)
}

func TestDigesterFunc(t *testing.T) {

	var called string
	d := DigesterFunc(func(ctx context.Context, identifier string, buf []byte) ([]byte, error) {
		called = identifier
		return []byte{0xab}, nil
	})
	digest, err := d.Digest(context.Background(), "SHA-1", nil)
	require.Nil(t, err)
	require.Equal(t, []byte{0xab}, digest)
	require.Equal(t, "SHA-1", called)
}
