package declarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose_GroupScoping(t *testing.T) {
	cmd := NewCommand(
		WithArguments(NewArg(WithLong("verbose"), AsFlag())),
		WithGroups(&Group{
			Key:       "transport",
			Arguments: []*Descriptor{NewArg(WithLong("retries"))},
			Groups: []*Group{{
				Key:       "tls",
				Arguments: []*Descriptor{NewArg(WithLong("cert"))},
			}},
		}),
	)

	set := Compose(cmd)

	assert.Equal(t, 3, set.Len())
	_, ok := set.Get("verbose")
	assert.True(t, ok)
	d, ok := set.Get("transport.retries")
	assert.True(t, ok, "group keys should prefix nested identities")
	assert.Equal(t, "transport.retries", d.Key)
	_, ok = set.Get("transport.tls.cert")
	assert.True(t, ok, "nested groups should stack their prefixes")
}

func TestCompose_DoesNotMutateDeclarations(t *testing.T) {
	inner := NewArg(WithLong("retries"))
	cmd := NewCommand(WithGroups(&Group{Key: "transport", Arguments: []*Descriptor{inner}}))

	Compose(cmd)
	Compose(cmd)

	assert.Equal(t, "retries", inner.Key, "composition must re-scope copies, never the declaration")
}

func TestCompose_FirstDeclarationWins(t *testing.T) {
	first := NewArg(WithKey("a"), WithLong("dup"))
	second := NewArg(WithKey("b"), WithLong("dup"))
	cmd := NewCommand(WithArguments(first, second))

	set := Compose(cmd)

	d, ok := set.Lookup(Long("dup"))
	assert.True(t, ok)
	assert.Equal(t, "a", d.Key, "name lookup should resolve to the first declaration")
	assert.Equal(t, 2, set.Len(), "duplicates stay visible to the validators")
}

func TestArgumentSet_LookupShort(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithLong("color"), WithShort('c'), AsFlag(), WithInverted("no-color")),
	))
	set := Compose(cmd)

	d, inverted, ok := set.lookupShort('c')
	assert.True(t, ok)
	assert.False(t, inverted)
	assert.Equal(t, "color", d.Key)

	_, _, ok = set.lookupShort('z')
	assert.False(t, ok)
}

func TestArgumentSet_MatchLongPrefix(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithLong("verbose"), AsFlag()),
		NewArg(WithLong("version"), AsFlag()),
		NewArg(WithLong("output")),
	))
	set := Compose(cmd)

	matches := set.matchLongPrefix("ver")
	assert.Len(t, matches, 2, "a shared prefix should report every candidate")

	matches = set.matchLongPrefix("verb")
	assert.Len(t, matches, 1)
	assert.Equal(t, "verbose", matches[0].d.Key)

	matches = set.matchLongPrefix("x")
	assert.Empty(t, matches)
}

func TestArgumentSet_MatchLongPrefix_SameArgumentTwice(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("out"), WithLong("output"), WithLong("outfile")),
	))
	set := Compose(cmd)

	matches := set.matchLongPrefix("out")
	assert.Len(t, matches, 1, "two spellings of one argument are not ambiguous")
}

func TestArgumentSet_Collector(t *testing.T) {
	plain := Compose(NewCommand(WithArguments(NewArg(WithLong("verbose"), AsFlag()))))
	assert.Nil(t, plain.collector())

	with := Compose(NewCommand(WithArguments(
		NewArg(WithKey("rest"), WithStrategy(AllUnrecognized), WithRepeating()),
	)))
	assert.NotNil(t, with.collector())
}
