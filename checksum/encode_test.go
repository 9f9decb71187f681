package checksum

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	require.Equal(t, "", Encode([]byte{}))
	require.Equal(t, "000fa0ff", Encode([]byte{0x00, 0x0f, 0xa0, 0xff}))
}

func TestEncodeRoundTrip(t *testing.T) {

	r := rand.New(rand.NewSource(42))
	for size := 0; size < 100; size++ {
		buf := make([]byte, size)
		r.Read(buf)

		encoded := Encode(buf)
		require.Len(t, encoded, 2*size)

		decoded, err := hex.DecodeString(encoded)
		require.Nil(t, err)
		require.Equal(t, buf, decoded)
	}
}
