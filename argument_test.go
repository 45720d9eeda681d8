package declarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewArgument(t *testing.T) {
	d := NewArgument("output", 'o', "where to write", Option, true, "out.txt")

	assert.Equal(t, "output", d.Key, "the key derives from the long name")
	assert.Equal(t, []ArgumentName{Long("output"), Short('o')}, d.Names)
	assert.True(t, d.Required)
	assert.Equal(t, "out.txt", d.DefaultValue)
}

func TestNewArg_Configuration(t *testing.T) {
	d := NewArg(
		WithLong("verbose"),
		WithShort('v'),
		AsFlag(),
		WithDescription("chatty logging"),
	)

	assert.Equal(t, "verbose", d.Key)
	assert.Equal(t, Flag, d.Kind)
	assert.Equal(t, Nullary, d.UpdateRule(), "flags never consume a value")
	assert.False(t, d.takesValue())
}

func TestNewArg_ShortOnlyKey(t *testing.T) {
	d := NewArg(WithShort('x'))

	assert.Equal(t, "x", d.Key, "without a long name the key falls back to the short name")
}

func TestDescriptor_SetErrors(t *testing.T) {
	d := NewArg(WithLong("output"))
	err := d.Set(AsPositional())
	assert.Error(t, err, "a named argument cannot become positional")

	err = d.Set(WithBinding(nil))
	assert.ErrorIs(t, err, ErrBindNilPointer)

	var ch chan int
	err = d.Set(WithBinding(&ch))
	assert.ErrorIs(t, err, ErrUnsupportedBinding)
}

func TestDescriptor_String(t *testing.T) {
	named := NewArg(WithLong("output"), WithShort('o'))
	assert.Equal(t, "--output/-o", named.String())

	positional := NewArg(WithKey("file"), WithValueName("file"), AsPositional())
	assert.Equal(t, "<file>", positional.String())
}

func TestDescriptor_Convert(t *testing.T) {
	plain := NewArg(WithLong("name"))
	v, err := plain.convert("raw")
	assert.NoError(t, err)
	assert.Equal(t, "raw", v, "without a converter the raw string passes through")

	var n int
	bound := NewArg(WithLong("count"), WithBinding(&n))
	v, err = bound.convert("5")
	assert.NoError(t, err)
	assert.Equal(t, 5, v, "binding derives the conversion from the target type")
	_, err = bound.convert("five")
	assert.Error(t, err)
}

func TestArgumentName(t *testing.T) {
	assert.Equal(t, "--verbose", Long("verbose").String())
	assert.Equal(t, "-v", Short('v').String())
	assert.Equal(t, "-mode", LongSingleDash("mode").String())

	assert.True(t, Short('v').IsValid())
	assert.False(t, Long("").IsValid())
	assert.False(t, ArgumentName{Kind: ShortName, Text: "ab"}.IsValid())
}
