package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/fugue/checksum/format"
	"github.com/fugue/checksum/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {

	tests := map[string]string{
		"1234":                 "1234",
		" -7 ":                 "-7",
		"18446744073709551615": "18446744073709551615",
		"1.50":                 "1.5",
		"1e21":                 "1e+21",
		"0.0000001":            "1e-7",
	}
	for input, expected := range tests {
		n, err := parseNumber(input)
		require.Nil(t, err, input)
		assert.Equal(t, expected, n.String(), input)
	}

	_, err := parseNumber("twelve")
	require.NotNil(t, err)
}

func TestDecodeDocument(t *testing.T) {

	value, err := decodeDocument(strings.NewReader(`{"b": 2, "a": [1.50, "x"]}`), "json")
	require.Nil(t, err)
	require.Equal(t, map[string]interface{}{
		"b": json.Number("2"),
		"a": []interface{}{json.Number("1.50"), "x"},
	}, value)

	value, err = decodeDocument(strings.NewReader("b: 2\na:\n  - 1\n  - x\nnested:\n  1: one\n"), "yaml")
	require.Nil(t, err)
	require.Equal(t, map[string]interface{}{
		"b":      2,
		"a":      []interface{}{1, "x"},
		"nested": map[string]interface{}{"1": "one"},
	}, value)

	_, err = decodeDocument(strings.NewReader("{"), "json")
	require.NotNil(t, err)

	_, err = decodeDocument(strings.NewReader("a: 1"), "toml")
	require.Equal(t, "Unknown document format: toml", err.Error())
}

func TestDecodeHex(t *testing.T) {

	out, err := decodeHex([]byte(" 00ff10\n"))
	require.Nil(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0x10}, out)

	_, err = decodeHex([]byte("zz"))
	require.NotNil(t, err)
}

func TestReporter(t *testing.T) {

	color.NoColor = true

	var stdout, stderr bytes.Buffer
	r := &reporter{mode: format.Text, alg: hash.SHA1, stdout: &stdout, stderr: &stderr}

	r.report("a.txt", "abcd", nil)
	require.Nil(t, r.err())

	r.report("b.txt", "", errors.New("not found"))
	r.report("c.txt", "", errors.New("denied"))
	require.NotNil(t, r.err())
	require.Contains(t, r.err().Error(), "b.txt: not found")
	require.Contains(t, r.err().Error(), "c.txt: denied")

	require.Equal(t, "abcd  a.txt\n", stdout.String())
	require.Equal(t, "b.txt: not found\nc.txt: denied\n", stderr.String())
}

func TestAlgorithmViewItems(t *testing.T) {

	rows := algorithmViewItems()
	require.Len(t, rows, 4)

	first := rows[0].(listAlgorithmsViewItem)
	require.Equal(t, "SHA1", first.Name)
	require.Equal(t, 40, first.HexLength)
	require.True(t, first.Default)

	last := rows[3].(listAlgorithmsViewItem)
	require.Equal(t, "SHA-512", last.Identifier)
	require.Equal(t, 64, last.DigestSize)
	require.False(t, last.Default)
}

func TestWriteCompletion(t *testing.T) {

	for _, shell := range []string{"bash", "zsh", "fish"} {
		var buf bytes.Buffer
		require.Nil(t, writeCompletion(rootCmd, shell, &buf), shell)
		require.Contains(t, buf.String(), "checksum", shell)
	}

	err := writeCompletion(rootCmd, "tcsh", &bytes.Buffer{})
	require.Equal(t, "Unsupported shell: tcsh", err.Error())
}
