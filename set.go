package declarg

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ArgumentSet is the composed, insertion-ordered collection of descriptors
// for one command level. Insertion order is significant: it is both display
// order and positional-matching order.
type ArgumentSet struct {
	ordered  []*Descriptor
	byKey    *orderedmap.OrderedMap[string, *Descriptor]
	byName   map[ArgumentName]*Descriptor
	inverted map[ArgumentName]*Descriptor
}

// prefixMatch is one candidate produced by abbreviation matching.
type prefixMatch struct {
	d        *Descriptor
	name     ArgumentName
	inverted bool
}

// Compose flattens a command's own descriptors and those of every embedded
// group into one ArgumentSet, re-scoping nested identities under the
// embedding group's key path. Compose is pure and deterministic: composing
// the same declarations twice yields identical sets. It never fails - name
// uniqueness is deliberately left to the validators so that composition
// itself cannot reject a schema.
func Compose(cmd *Command) *ArgumentSet {
	set := &ArgumentSet{
		byKey:    orderedmap.New[string, *Descriptor](),
		byName:   map[ArgumentName]*Descriptor{},
		inverted: map[ArgumentName]*Descriptor{},
	}
	set.append("", cmd.Arguments)
	set.appendGroups("", cmd.Groups)

	return set
}

func (s *ArgumentSet) append(prefix string, arguments []*Descriptor) {
	for _, d := range arguments {
		scoped := *d // shallow copy: composition never mutates declarations
		if prefix != "" {
			scoped.Key = prefix + keyPathSeparator + d.Key
		}
		entry := &scoped
		s.ordered = append(s.ordered, entry)
		if _, exists := s.byKey.Get(entry.Key); !exists {
			s.byKey.Set(entry.Key, entry)
		}
		for _, n := range entry.Names {
			if _, exists := s.byName[n]; !exists {
				s.byName[n] = entry
			}
		}
		for _, n := range entry.InvertedNames {
			if _, exists := s.inverted[n]; !exists {
				s.inverted[n] = entry
			}
		}
	}
}

func (s *ArgumentSet) appendGroups(prefix string, groups []*Group) {
	for _, g := range groups {
		scoped := g.Key
		if prefix != "" {
			scoped = prefix + keyPathSeparator + g.Key
		}
		s.append(scoped, g.Arguments)
		s.appendGroups(scoped, g.Groups)
	}
}

// Len returns the number of descriptors in the set, duplicates included.
func (s *ArgumentSet) Len() int {
	return len(s.ordered)
}

// Descriptors returns the descriptors in declaration order. The returned
// slice is shared; callers must not modify it.
func (s *ArgumentSet) Descriptors() []*Descriptor {
	return s.ordered
}

// Get returns the descriptor with the given scoped key.
func (s *ArgumentSet) Get(key string) (*Descriptor, bool) {
	return s.byKey.Get(key)
}

// Lookup resolves an exact name to its descriptor.
func (s *ArgumentSet) Lookup(name ArgumentName) (*Descriptor, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// LookupInverted resolves an exact inverted name to its flag descriptor.
func (s *ArgumentSet) LookupInverted(name ArgumentName) (*Descriptor, bool) {
	d, ok := s.inverted[name]
	return d, ok
}

// lookupShort resolves a short name rune, checking primary names first and
// inverted names second. The second result reports inversion.
func (s *ArgumentSet) lookupShort(r rune) (*Descriptor, bool, bool) {
	if d, ok := s.byName[Short(r)]; ok {
		return d, false, true
	}
	if d, ok := s.inverted[Short(r)]; ok {
		return d, true, true
	}
	return nil, false, false
}

// matchLongPrefix returns the descriptors owning a long name which begins
// with prefix. Matches are unique per descriptor and inversion so that a
// prefix covering two spellings of the same argument is not ambiguous.
func (s *ArgumentSet) matchLongPrefix(prefix string) []prefixMatch {
	var matches []prefixMatch
	seen := map[*Descriptor]map[bool]bool{}
	record := func(d *Descriptor, name ArgumentName, inv bool) {
		if seen[d] == nil {
			seen[d] = map[bool]bool{}
		}
		if seen[d][inv] {
			return
		}
		seen[d][inv] = true
		matches = append(matches, prefixMatch{d: d, name: name, inverted: inv})
	}

	for _, d := range s.ordered {
		for _, n := range d.Names {
			if n.Kind == LongName && strings.HasPrefix(n.Text, prefix) {
				record(d, n, false)
			}
		}
		for _, n := range d.InvertedNames {
			if n.Kind == LongName && strings.HasPrefix(n.Text, prefix) {
				record(d, n, true)
			}
		}
	}

	return matches
}

// positionals returns the positional descriptors in declaration order.
func (s *ArgumentSet) positionals() []*Descriptor {
	var out []*Descriptor
	for _, d := range s.ordered {
		if d.Kind == Positional {
			out = append(out, d)
		}
	}
	return out
}

// collector returns the descriptor requesting unrecognized input, if any.
func (s *ArgumentSet) collector() *Descriptor {
	for _, d := range s.ordered {
		if d.Strategy == AllUnrecognized {
			return d
		}
	}
	return nil
}

// hasPostTerminator reports whether any positional claims post-terminator
// values exclusively.
func (s *ArgumentSet) hasPostTerminator() bool {
	for _, d := range s.ordered {
		if d.Kind == Positional && d.Strategy == PostTerminator {
			return true
		}
	}
	return false
}
