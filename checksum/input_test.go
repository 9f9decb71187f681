package checksum

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

type blob []byte

func TestClassify(t *testing.T) {

	buffer := bytes.NewBufferString("stream")
	text := "pointer"

	tests := []struct {
		value    interface{}
		kind     string
		expected Input
	}{
		{"hello", "text", Text("hello")},
		{label("named"), "text", Text("named")},
		{&text, "text", Text("pointer")},
		{42, "number", Int(42)},
		{int8(-3), "number", Int(-3)},
		{uint64(18446744073709551615), "number", Uint(18446744073709551615)},
		{2.5, "number", Float(2.5)},
		{float32(0.1), "number", Float32(0.1)},
		{json.Number("12"), "number", Int(12)},
		{json.Number("1.50"), "number", Float(1.5)},
		{[]byte{1, 2}, "binary-buffer", Buffer([]byte{1, 2})},
		{blob{3}, "binary-buffer", Buffer([]byte{3})},
		{[2]byte{4, 5}, "binary-buffer", Buffer([]byte{4, 5})},
		{[]byte(nil), "binary-buffer", Buffer(nil)},
		{buffer, "binary-file", File{Reader: buffer}},
		{[]int{1, 2}, "array", Structured{Value: []int{1, 2}}},
		{[2]string{"a", "b"}, "array", Structured{Value: [2]string{"a", "b"}}},
		{map[string]int{"a": 1}, "object", Structured{Value: map[string]int{"a": 1}}},
		{struct{ A int }{1}, "object", Structured{Value: struct{ A int }{1}}},
		{Text("already"), "text", Text("already")},
	}
	for _, tt := range tests {
		in, err := Classify(tt.value)
		require.Nil(t, err, "%T", tt.value)
		assert.Equal(t, tt.kind, in.Kind(), "%T", tt.value)
		assert.Equal(t, tt.expected, in, "%T", tt.value)
	}
}

func TestClassifyFileName(t *testing.T) {

	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "/data/input.bin", []byte("1234"), 0644))

	f, err := fs.Open("/data/input.bin")
	require.Nil(t, err)
	defer f.Close()

	in, err := Classify(f)
	require.Nil(t, err)
	file, ok := in.(File)
	require.True(t, ok)
	require.Equal(t, "/data/input.bin", file.Name)
	require.Equal(t, "binary-file", file.Kind())
}

func TestClassifyUnsupported(t *testing.T) {

	var nilSlice []string

	tests := []struct {
		value    interface{}
		typeName string
	}{
		{nil, "nil"},
		{true, "bool"},
		{complex64(1), "complex64"},
		{nilSlice, "[]string"},
		{func() {}, "func()"},
		{(*bytes.Buffer)(nil), "*bytes.Buffer"},
	}
	for _, tt := range tests {
		in, err := Classify(tt.value)
		require.Nil(t, in)
		require.NotNil(t, err)

		var typeErr *UnsupportedTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, tt.typeName, typeErr.Type)
	}

	_, err := Classify(false)
	assert.Equal(t,
		"data type bool not supported (supported types: binary-file, text, number, binary-buffer, array, object)",
		err.Error())
}
