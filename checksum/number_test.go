package checksum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberString(t *testing.T) {

	tests := []struct {
		number   Number
		expected string
	}{
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Int(math.MaxInt64), "9223372036854775807"},
		{Uint(math.MaxUint64), "18446744073709551615"},
		{Float(100), "100"},
		{Float(1.5), "1.5"},
		{Float(123.456), "123.456"},
		{Float(-0.25), "-0.25"},
		{Float(0.000001), "0.000001"},
		{Float(1.5e-7), "1.5e-7"},
		{Float(1e-7), "1e-7"},
		{Float(1e20), "100000000000000000000"},
		{Float(1e21), "1e+21"},
		{Float(-1.25e22), "-1.25e+22"},
		{Float(5e-324), "5e-324"},
		{Float(math.MaxFloat64), "1.7976931348623157e+308"},
		{Float(math.Copysign(0, -1)), "0"},
		{Float(math.NaN()), "NaN"},
		{Float(math.Inf(1)), "Infinity"},
		{Float(math.Inf(-1)), "-Infinity"},
		{Float32(0.1), "0.1"},
		{Number{}, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.number.String())
	}
}
