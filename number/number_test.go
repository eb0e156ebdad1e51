package number

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		name  string
		input string
		nan   bool
	}

	tcs := []TC{
		{
			name:  "integer",
			input: "3",
		},
		{
			name:  "fraction",
			input: "1.25",
		},
		{
			name:  "signed",
			input: "-0.001",
		},
		{
			name:  "plus-prefix",
			input: "+1.1",
		},
		{
			name:  "exponent",
			input: "2.5e10",
		},
		{
			name:  "negative-exponent",
			input: "4e-3",
		},
		{
			name:  "whitespace",
			input: "  42  ",
		},
		{
			name:  "infinity",
			input: "Infinity",
		},
		{
			name:  "negative-infinity",
			input: "-Infinity",
		},
		{
			name:  "nan-literal",
			input: "NaN",
			nan:   true,
		},
		{
			name:  "garbage",
			input: "aaa",
			nan:   true,
		},
		{
			name:  "empty",
			input: "",
			nan:   true,
		},
		{
			name:  "double-dot",
			input: "1.2.3",
			nan:   true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.nan, d.IsNaN())
		})
	}
}

func TestParseDebug(t *testing.T) {
	prev := SetDebug(true)
	defer SetDebug(prev)

	_, err := Parse("aaa")
	require.Error(t, err)

	d, err := Parse("1.5")
	require.NoError(t, err)
	require.Equal(t, "1.5", d.String())

	require.True(t, Debug())
}

func TestSetDebug(t *testing.T) {
	prev := SetDebug(true)
	defer SetDebug(prev)

	require.True(t, SetDebug(false))
	require.False(t, SetDebug(true))
	require.True(t, Debug())
}

func TestMustParse(t *testing.T) {
	require.Equal(t, "1.5", MustParse("1.5").String())
	require.Panics(t, func() {
		MustParse("aaa")
	})
}

func TestPredicates(t *testing.T) {
	require.True(t, Zero().IsZero())
	require.True(t, Zero().IsFinite())
	require.Equal(t, 0, Zero().Sign())

	require.True(t, FromInt(7).IsInt())
	require.Equal(t, 1, FromInt(7).Sign())
	require.Equal(t, -1, FromInt(-7).Sign())

	inf := MustParse("Infinity")
	require.False(t, inf.IsFinite())
	require.False(t, inf.IsNaN())
	require.False(t, inf.IsInt())
	require.Equal(t, 1, inf.Sign())

	undefined := MustParse("NaN")
	require.True(t, undefined.IsNaN())
	require.False(t, undefined.IsFinite())
}

func TestIsInt(t *testing.T) {
	type TC struct {
		input string
		want  bool
	}

	tcs := []TC{
		{"0", true},
		{"3", true},
		{"-3", true},
		{"3.0", true},
		{"3.000", true},
		{"2.5e3", true},
		{"1e-2", false},
		{"3.1", false},
		{"-0.0001", false},
		{"Infinity", false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			require.Equal(t, tc.want, MustParse(tc.input).IsInt())
		})
	}
}

func TestCmp(t *testing.T) {
	type TC struct {
		a, b string
		want int
	}

	tcs := []TC{
		{"3", "3", 0},
		{"3", "3.000", 0},
		{"2", "3", -1},
		{"4", "3", 1},
		{"-1.1", "0", -1},
		{"+1.1", "0", 1},
		{"Infinity", "1e100", 1},
		{"-Infinity", "-1e100", -1},
		{"Infinity", "Infinity", 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s?%s", i, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.want, MustParse(tc.a).Cmp(MustParse(tc.b)))
		})
	}
}

func TestMod(t *testing.T) {
	type TC struct {
		name string
		a, b string
		rem  string
		ok   bool
	}

	tcs := []TC{
		{
			name: "exact",
			a:    "6",
			b:    "3",
			rem:  "0",
			ok:   true,
		},
		{
			name: "remainder",
			a:    "3",
			b:    "2",
			rem:  "1",
			ok:   true,
		},
		{
			name: "fractional-exact",
			a:    "0.3",
			b:    "0.1",
			rem:  "0",
			ok:   true,
		},
		{
			name: "fractional-remainder",
			a:    "7.5",
			b:    "2",
			rem:  "1.5",
			ok:   true,
		},
		{
			name: "negative-dividend",
			a:    "-3",
			b:    "2",
			rem:  "-1",
			ok:   true,
		},
		{
			name: "large-dividend",
			a:    "100000000000000000001",
			b:    "2",
			rem:  "1",
			ok:   true,
		},
		{
			name: "finite-mod-infinity",
			a:    "3",
			b:    "Infinity",
			rem:  "3",
			ok:   true,
		},
		{
			name: "infinite-dividend",
			a:    "Infinity",
			b:    "2",
			ok:   false,
		},
		{
			name: "zero-divisor",
			a:    "3",
			b:    "0",
			ok:   false,
		},
		{
			name: "nan-operand",
			a:    "NaN",
			b:    "2",
			ok:   false,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			rem, ok := MustParse(tc.a).Mod(MustParse(tc.b))
			require.Equal(t, tc.ok, ok)

			if tc.ok {
				require.Equal(t, 0, rem.Cmp(MustParse(tc.rem)))
			} else {
				require.True(t, rem.IsNaN())
			}
		})
	}
}
