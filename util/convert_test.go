package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertString_Scalars(t *testing.T) {
	var s string
	assert.NoError(t, ConvertString("hello", &s))
	assert.Equal(t, "hello", s)

	var b bool
	assert.NoError(t, ConvertString("true", &b))
	assert.True(t, b)
	assert.Error(t, ConvertString("maybe", &b))

	var i int
	assert.NoError(t, ConvertString("-42", &i))
	assert.Equal(t, -42, i)
	assert.Error(t, ConvertString("4.2", &i), "a float is not a valid integer")

	var f float64
	assert.NoError(t, ConvertString("3.14", &f))
	assert.Equal(t, 3.14, f)

	var d time.Duration
	assert.NoError(t, ConvertString("1h30m", &d))
	assert.Equal(t, 90*time.Minute, d)

	var u uint
	assert.Error(t, ConvertString("-1", &u))
}

func TestConvertString_Time(t *testing.T) {
	var ts time.Time
	assert.NoError(t, ConvertString("2024-06-01", &ts))
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.June, ts.Month())

	assert.Error(t, ConvertString("not a date", &ts))
}

func TestConvertString_SlicesAppend(t *testing.T) {
	var s []string
	assert.NoError(t, ConvertString("a", &s))
	assert.NoError(t, ConvertString("b", &s))
	assert.Equal(t, []string{"a", "b"}, s)

	var is []int
	assert.NoError(t, ConvertString("1", &is))
	assert.NoError(t, ConvertString("2", &is))
	assert.Equal(t, []int{1, 2}, is)
}

func TestConvertString_UnsupportedTarget(t *testing.T) {
	var ch chan int
	assert.Error(t, ConvertString("x", &ch))
}

func TestAssign(t *testing.T) {
	s := []string{"stale"}
	assert.NoError(t, Assign([]string{"a", "b"}, &s))
	assert.Equal(t, []string{"a", "b"}, s, "slice targets are reset before assignment")

	var last string
	assert.NoError(t, Assign([]string{"a", "b"}, &last))
	assert.Equal(t, "b", last, "scalar targets receive the last value")

	keep := "untouched"
	assert.NoError(t, Assign(nil, &keep))
	assert.Equal(t, "untouched", keep)
}

func TestConverterFor(t *testing.T) {
	var i int
	conv, ok := ConverterFor(&i)
	assert.True(t, ok)
	v, err := conv("7")
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
	_, err = conv("seven")
	assert.Error(t, err)

	var d time.Duration
	conv, ok = ConverterFor(&d)
	assert.True(t, ok)
	v, err = conv("2s")
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Second, v)

	var ch chan int
	_, ok = ConverterFor(&ch)
	assert.False(t, ok)
}

func TestParseNumeric(t *testing.T) {
	n, ok := ParseNumeric("42")
	assert.True(t, ok)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(42), n.Int)

	n, ok = ParseNumeric("3.14")
	assert.True(t, ok)
	assert.True(t, n.IsFloat)
	assert.Equal(t, 3.14, n.Float)

	_, ok = ParseNumeric("x")
	assert.False(t, ok)
}
