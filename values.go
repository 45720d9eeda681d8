package declarg

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValueSet maps descriptor identities to their converted values. A ValueSet
// is created fresh per parse invocation, populated only on full success and
// never mutated after being returned. Scalar arguments deliver their single
// (last) value; repeating arguments deliver a []any of every value in input
// order; flags deliver bool, or an occurrence count when repeating.
type ValueSet struct {
	values      *orderedmap.OrderedMap[string, any]
	raw         map[string][]string
	command     *Command
	commandPath []string
}

func newValueSet() *ValueSet {
	return &ValueSet{
		values: orderedmap.New[string, any](),
		raw:    map[string][]string{},
	}
}

func (v *ValueSet) set(key string, value any, raws []string) {
	v.values.Set(key, value)
	if len(raws) > 0 {
		v.raw[key] = raws
	}
}

// Get returns the converted value delivered for key.
func (v *ValueSet) Get(key string) (any, bool) {
	return v.values.Get(key)
}

// Strings returns the raw command-line strings consumed for key, in input
// order. Defaults appear as a single raw value.
func (v *ValueSet) Strings(key string) []string {
	return v.raw[key]
}

// String returns the last raw string consumed for key.
func (v *ValueSet) String(key string) (string, bool) {
	raws := v.raw[key]
	if len(raws) == 0 {
		return "", false
	}
	return raws[len(raws)-1], true
}

// Bool reports the delivered value of a flag. Absent or non-boolean keys
// read as false.
func (v *ValueSet) Bool(key string) bool {
	if val, ok := v.values.Get(key); ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

// Count returns the occurrence count of a repeating flag, or the number of
// values delivered for any other key.
func (v *ValueSet) Count(key string) int {
	val, ok := v.values.Get(key)
	if !ok {
		return 0
	}
	switch t := val.(type) {
	case int:
		return t
	case []any:
		return len(t)
	default:
		return 1
	}
}

// Keys returns the populated identities in declaration order.
func (v *ValueSet) Keys() []string {
	keys := make([]string, 0, v.values.Len())
	for pair := v.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of populated identities.
func (v *ValueSet) Len() int {
	return v.values.Len()
}

// Command returns the deepest command matched during the parse.
func (v *ValueSet) Command() *Command {
	return v.command
}

// CommandPath returns the names of the commands dispatched through, in order.
func (v *ValueSet) CommandPath() []string {
	return v.commandPath
}
