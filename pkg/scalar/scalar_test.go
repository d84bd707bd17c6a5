package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanaasagi/struct-env/pkg/scalar"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"TRUE", true},
		{"true", true},
		{"True", true},
		{"tRuE", true},
		{"FALSE", false},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
		{" true", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scalar.Bool(tt.in))
		})
	}
}

func TestStrictBool(t *testing.T) {
	t.Parallel()

	b, err := scalar.StrictBool("true")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = scalar.StrictBool("0")
	require.NoError(t, err)
	assert.False(t, b)

	_, err = scalar.StrictBool("yes")
	assert.ErrorIs(t, err, scalar.ErrSyntax)
}

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		bits int
		want int64
	}{
		{name: "decimal", in: "8", bits: 8, want: 8},
		{name: "negative", in: "-128", bits: 8, want: -128},
		{name: "plus sign", in: "+42", bits: 64, want: 42},
		{name: "hex", in: "0xff", bits: 16, want: 255},
		{name: "hex upper", in: "0XFF", bits: 16, want: 255},
		{name: "negative hex", in: "-0x10", bits: 32, want: -16},
		{name: "octal", in: "0o17", bits: 32, want: 15},
		{name: "binary", in: "0b101", bits: 8, want: 5},
		{name: "leading zero is decimal", in: "010", bits: 32, want: 10},
		{name: "zero", in: "0", bits: 8, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := scalar.Int(tt.in, tt.bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		bits int
		want error
	}{
		{name: "not a number", in: "notanumber", bits: 8, want: scalar.ErrSyntax},
		{name: "empty", in: "", bits: 8, want: scalar.ErrSyntax},
		{name: "sign only", in: "-", bits: 8, want: scalar.ErrSyntax},
		{name: "prefix only", in: "0x", bits: 8, want: scalar.ErrSyntax},
		{name: "double sign", in: "0x-5", bits: 8, want: scalar.ErrSyntax},
		{name: "underscore", in: "1_000", bits: 32, want: scalar.ErrSyntax},
		{name: "bad digit for base", in: "0b102", bits: 8, want: scalar.ErrSyntax},
		{name: "overflow", in: "128", bits: 8, want: scalar.ErrRange},
		{name: "underflow", in: "-129", bits: 8, want: scalar.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := scalar.Int(tt.in, tt.bits)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUint(t *testing.T) {
	t.Parallel()

	got, err := scalar.Uint("255", 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(255), got)

	got, err = scalar.Uint("0xffff", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint16), got)

	_, err = scalar.Uint("256", 8)
	assert.ErrorIs(t, err, scalar.ErrRange)

	_, err = scalar.Uint("-1", 8)
	assert.ErrorIs(t, err, scalar.ErrSyntax)
}

func TestFloat(t *testing.T) {
	t.Parallel()

	got, err := scalar.Float("3.14", 64)
	require.NoError(t, err)
	assert.InDelta(t, 3.14, got, 1e-12)

	got, err = scalar.Float("1e-3", 32)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, got, 1e-6)

	_, err = scalar.Float("pi", 64)
	assert.ErrorIs(t, err, scalar.ErrSyntax)

	_, err = scalar.Float("1e400", 64)
	assert.ErrorIs(t, err, scalar.ErrRange)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"KonoSuba", "Attack on Titan"}, scalar.Split("KonoSuba,Attack on Titan"))
	assert.Equal(t, []string{"a", " b", ""}, scalar.Split("a, b,"))
	assert.Equal(t, []string{""}, scalar.Split(""))
}
