// Copyright 2020 Aleksandr Demakin. All rights reserved.

package float128

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f Float128
		s string
	}{
		{qZero, "0"},
		{qNegZero, "-0"},
		{qOne, "1"},
		{qOneHalf, "1.5"},
		{qTwoAndQtr.Neg(), "-2.25"},
		{qHalf, "0.5"},
		{qThree, "3"},
		{qNaN, "NaN"},
		{qSignalNaN, "NaN"},
		{qInf, "+Inf"},
		{qNegInf, "-Inf"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.f.String())
		})
	}
}

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s string
		f Float128
	}{
		{"0", qZero},
		{"-0", qNegZero},
		{"1", qOne},
		{"1.5", qOneHalf},
		{"-2.25", qTwoAndQtr.Neg()},
		{"0.5", qHalf},
		{"NaN", qNaN},
		{"+Inf", qInf},
		{"-Infinity", qNegInf},
		{"0x1.8p+1", qThree},
		{"0x1p-16494", qMinDenorm},
		{"0x1p-16382", qMinNormal},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := Parse(test.s)
			a.NoError(err)
			a.Equal(test.f, f)
		})
	}
}

func TestParseSubnormal(t *testing.T) {
	a := assert.New(t)
	// half the smallest subnormal ties to even, which is zero
	f, err := Parse("0x1p-16495")
	a.NoError(err)
	a.Equal(qZero, f)
	// 1.5 ulps ties to even again, this time upward
	f, err = Parse("0x1.8p-16494")
	a.NoError(err)
	a.Equal(FromBits(0, 2), f)
	// just above the tie rounds up to one ulp
	f, err = Parse("0x1.1p-16495")
	a.NoError(err)
	a.Equal(qMinDenorm, f)
}

func TestParseInexact(t *testing.T) {
	a := assert.New(t)
	// decimals with no finite binary expansion take the truncate-then-round
	// path; the fraction of 0.1 is the repeating pattern 0x9, rounded up in
	// the last digit
	tests := []struct {
		s string
		f Float128
		d float64
	}{
		{"0.1", FromBits(0x3ffb_9999_9999_9999, 0x9999_9999_9999_999a), 0.1},
		{"-0.1", FromBits(0xbffb_9999_9999_9999, 0x9999_9999_9999_999a), -0.1},
		{"0.2", FromBits(0x3ffc_9999_9999_9999, 0x9999_9999_9999_999a), 0.2},
		{"1e-1", FromBits(0x3ffb_9999_9999_9999, 0x9999_9999_9999_999a), 0.1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := Parse(test.s)
			a.NoError(err)
			a.Equal(test.f, f)
			a.Equal(test.d, f.Float64(RoundNearestEven))
		})
	}
}

func TestParseErrors(t *testing.T) {
	a := assert.New(t)
	for _, s := range []string{"", "abc", "1..2", "0x", "1e", "--1"} {
		_, err := Parse(s)
		a.Error(err, "%q", s)
	}
	// out of range parses to an infinity with an error, like strconv
	f, err := Parse("1e1000000")
	a.Error(err)
	a.True(f.IsInf(1))
	f, err = Parse("-1e1000000")
	a.Error(err)
	a.True(f.IsInf(-1))
	// underflow to zero keeps the sign and is not an error
	f, err = Parse("1e-1000000")
	a.NoError(err)
	a.Equal(qZero, f)
	f, err = Parse("-1e-1000000")
	a.NoError(err)
	a.Equal(qNegZero, f)
}

func TestStringParseRoundTrip(t *testing.T) {
	a := assert.New(t)
	values := []Float128{
		qZero, qNegZero, qOne, qOne.Neg(), qOneHalf, qTwoAndQtr, qHalf,
		qOnePlusUlp, qOneMinusUlp, qMinNormal, qMaxFinite, qMaxFinite.Neg(),
		qMinDenorm, qMaxDenorm, qInf, qNegInf,
		FromUint64(123456789), FromInt64(-987654321),
	}
	for i, v := range values {
		f, err := Parse(v.String())
		a.NoError(err, "%d", i)
		a.Equal(v, f, "%d: %s", i, v)
	}
}

func TestGoString(t *testing.T) {
	a := assert.New(t)
	a.Equal("1 {0x3fff000000000000, 0x0000000000000000}", qOne.GoString())
	a.Equal("NaN {0x7fff800000000000, 0x0000000000000000}", qNaN.GoString())
}

func TestBigFloat(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.5", qOneHalf.BigFloat().String())
	a.Equal(uint(113), qOne.BigFloat().Prec())
	a.True(qInf.BigFloat().IsInf())
	a.True(qNegZero.BigFloat().Signbit())
	a.Panics(func() { qNaN.BigFloat() })
}

func TestTextFormats(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.500", qOneHalf.Text('f', 3))
	a.Equal("2.25e+00", qTwoAndQtr.Text('e', 2))
	a.Equal("NaN", qNaN.Text('f', 3))
	a.Equal("-Inf", qNegInf.Text('e', 2))
	a.Equal("-0", qNegZero.Text('f', 3))
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	data, err := json.Marshal(qOneHalf)
	a.NoError(err)
	a.Equal(`"1.5"`, string(data))

	var f Float128
	a.NoError(json.Unmarshal([]byte(`"2.25"`), &f))
	a.Equal(qTwoAndQtr, f)
	a.NoError(json.Unmarshal([]byte(`2.25`), &f)) // bare numbers work too
	a.Equal(qTwoAndQtr, f)
	a.NoError(json.Unmarshal([]byte(`"-Inf"`), &f))
	a.Equal(qNegInf, f)
	a.Error(json.Unmarshal([]byte(`"abc"`), &f))
	a.Error(f.UnmarshalJSON(nil))

	type payload struct {
		V Float128 `json:"v"`
	}
	var p payload
	a.NoError(json.Unmarshal([]byte(`{"v": "0.5"}`), &p))
	a.Equal(qHalf, p.V)
}

func TestText(t *testing.T) {
	a := assert.New(t)
	data, err := qHalf.MarshalText()
	a.NoError(err)
	a.Equal("0.5", string(data))

	var f Float128
	a.NoError(f.UnmarshalText([]byte("-1.5")))
	a.Equal(qOneHalf.Neg(), f)
	a.Error(f.UnmarshalText([]byte("nope")))
}

func TestDecimalAgreement(t *testing.T) {
	a := assert.New(t)
	// decimal arithmetic is exact on these operands, so the string forms of
	// the products must agree with the correctly rounded binary results
	tests := []struct{ x, y string }{
		{"1.5", "2.25"},
		{"-0.5", "0.25"},
		{"123456789", "987654321"},
		{"3.0517578125e-05", "32768"}, // 2^-15 * 2^15
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			dx := decimal.RequireFromString(test.x)
			dy := decimal.RequireFromString(test.y)
			fx, err := Parse(test.x)
			a.NoError(err)
			fy, err := Parse(test.y)
			a.NoError(err)
			gotMul := decimal.RequireFromString(fx.Mul(fy, RoundNearestEven).String())
			a.True(dx.Mul(dy).Equal(gotMul), "mul: %s", gotMul)
			gotAdd := decimal.RequireFromString(fx.Add(fy, RoundNearestEven).String())
			a.True(dx.Add(dy).Equal(gotAdd), "add: %s", gotAdd)
		})
	}
}
