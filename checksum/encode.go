package checksum

import "encoding/hex"

// Encode renders a digest as lowercase hexadecimal, two characters per
// byte in buffer order
func Encode(digest []byte) string {
	return hex.EncodeToString(digest)
}
