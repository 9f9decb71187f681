package checksum

import (
	"testing"

	"github.com/fugue/checksum/hash"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestHasherSHA1(t *testing.T) {
	// echo -n "1234" | shasum
	// 7110eda4d09e062aa5e4a390b0a572ac0d2c0220  -

	expected := "7110eda4d09e062aa5e4a390b0a572ac0d2c0220"

	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "/tmp/checksum-test", []byte("1234"), 0644))

	h := NewHasher(hash.SHA1, fs)

	value, err := h.String("1234")
	require.Nil(t, err)
	require.Equal(t, expected, value)

	value, err = h.Object(1234)
	require.Nil(t, err)
	require.Equal(t, expected, value)

	value, err = h.Bytes([]byte("1234"))
	require.Nil(t, err)
	require.Equal(t, expected, value)

	value, err = h.File("/tmp/checksum-test")
	require.Nil(t, err)
	require.Equal(t, expected, value)

	_, err = h.File("/tmp/missing")
	require.NotNil(t, err)
}

func TestHasherSHA256(t *testing.T) {
	// echo -n "1234" | shasum -a 256
	// 03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4  -

	expected := "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4"

	h := SHA256()

	value, err := h.String("1234")
	require.Nil(t, err)
	require.Equal(t, expected, value)

	value, err = h.Object(1234)
	require.Nil(t, err)
	require.Equal(t, expected, value)
}

func TestHasherLengths(t *testing.T) {

	for h, length := range map[Hasher]int{SHA1(): 40, SHA256(): 64, SHA384(): 96, SHA512(): 128} {
		value, err := h.String("")
		require.Nil(t, err)
		require.Len(t, value, length)
	}
}
