package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPyFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integral", in: 1234, want: "1234.0"},
		{name: "zero", in: 0, want: "0.0"},
		{name: "negative_integral", in: -500, want: "-500.0"},
		{name: "fraction", in: 5012.25, want: "5012.25"},
		{name: "missing", in: math.NaN(), want: "nan"},
		{name: "positive_infinity", in: math.Inf(1), want: "inf"},
		{name: "tiny", in: 0.00001, want: "1e-05"},
		{name: "huge", in: 1e16, want: "1e+16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPyFloat(tt.in))
		})
	}
}
