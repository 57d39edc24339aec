package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3", 5},
		{"2 + 3 * 4", 14},
		{"(2+3)*4", 20},
		{"10 - 4 - 3", 3},
		{"12 / 4 / 3", 1},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"2^-1", 0.5},
		{"10 % 3", 1},
		{"-7 % 3", -1},
		{"--3", 3},
		{"+4", 4},
		{"sqrt(9)", 3},
		{"sqrt(16)+sqrt(9)", 7},
		{"log(1000)", 3},
		{"ln(e)", 1},
		{".5+.5", 1},
		{"5.", 5},
		{"2*π", 2 * math.Pi},
		{"e", math.E},
		{" 1 +  2 ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluateTrigUsesDegrees(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"sin(30)", 0.5},
		{"cos(60)", 0.5},
		{"tan(45)", 1},
		{"sin(90)", 1},
		// The whole argument is converted, not just its first term.
		{"sin(30+60)", 1},
		{"cos(2*90)", -1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"(2+3", ErrUnbalanced},
		{"2+3)", ErrUnbalanced},
		{")(", ErrUnbalanced},
		{"sqrt(9", ErrUnbalanced},
		{"1/0", ErrNotFinite},
		{"0/0", ErrNotFinite},
		{"sqrt(-1)", ErrNotFinite},
		{"log(0)", ErrNotFinite},
		{"5 % 0", ErrNotFinite},
		{"2+", ErrSyntax},
		{"*3", ErrSyntax},
		{"2e", ErrSyntax},
		{"2(3)", ErrSyntax},
		{"π2", ErrSyntax},
		{"sin 30", ErrSyntax},
		{".", ErrSyntax},
		{"1.2.3", ErrSyntax},
		{"()", ErrSyntax},
		{"foo(1)", ErrUnknownToken},
		{"Math.PI", ErrUnknownToken},
		{"2 $ 3", ErrUnknownToken},
		{"2 ** 3", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluateLimits(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	v, err := Evaluate(nest(100))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = Evaluate(nest(300))
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Evaluate(strings.Repeat("-", 300) + "1")
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Evaluate(strings.Repeat("2^", 300) + "1")
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Evaluate(strings.Repeat("1+", MaxExpressionLength/2) + "1")
	assert.ErrorIs(t, err, ErrTooLong)

	// Megabytes of nesting are refused before the parser sees them.
	_, err = Evaluate(nest(3_000_000))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.3, Round(0.1+0.2, 10))
	assert.Equal(t, 1.2345678901, Round(1.23456789012345, 10))
	assert.Equal(t, 0.0, Round(1e-12, 10))
	assert.False(t, math.Signbit(Round(-1e-12, 10)), "rounding to zero must not keep the sign")
	assert.Equal(t, 2.0, Round(1.99999999999, 10))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{0.3, "0.3"},
		{-2.5, "-2.5"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormattedResultEvaluatesBack(t *testing.T) {
	for _, v := range []float64{1e21, 1e-7, -3.25, 123456789.123} {
		got, err := Evaluate(FormatNumber(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
