package declarg

import (
	"fmt"
	"strings"
)

// Descriptor is the declarative record of one command-line argument: its
// names, kind, cardinality, parsing strategy and value conversion. A
// Descriptor carries no parse state and may be reused across parses.
type Descriptor struct {
	// Key is the stable identity of the argument. When the descriptor is
	// declared inside a nested group, composition prefixes the embedding
	// group's key path ("transport.retries"). Defaults to the first declared
	// long name, or the short name when no long name exists.
	Key string
	// Kind selects between Option, Flag and Positional matching.
	Kind ArgumentKind
	// Names holds the names the argument answers to. Positionals have none.
	Names []ArgumentName
	// InvertedNames holds names whose occurrence sets a flag to false
	// (--no-color for --color). Only meaningful on flags.
	InvertedNames []ArgumentName
	Cardinality   Cardinality
	// Required arguments with no occurrence and no default produce a
	// missing-required-argument diagnostic.
	Required bool
	// DefaultValue is converted and delivered when the argument is absent.
	DefaultValue string
	// DefaultText overrides how the default is described in usage output.
	DefaultText string
	Strategy    Strategy
	// Converter turns each raw string into the delivered value. When nil the
	// raw string is delivered as-is (flags fall back to boolean parsing).
	Converter   ConvertFunc
	Description string
	// ValueName is the placeholder shown in usage output (--output <file>).
	ValueName string
	Hidden    bool

	bindTo any
}

// NewArgument convenience initialization method to describe an argument.
// Alternatively, use NewArg to configure a Descriptor using option functions.
func NewArgument(long string, short rune, description string, kind ArgumentKind, required bool, defaultValue string) *Descriptor {
	d := &Descriptor{
		Kind:         kind,
		Description:  description,
		Required:     required,
		DefaultValue: defaultValue,
	}
	if long != "" {
		d.Names = append(d.Names, Long(long))
	}
	if short != 0 {
		d.Names = append(d.Names, Short(short))
	}
	d.Key = d.defaultKey()

	return d
}

// NewArg convenience initialization method to configure a Descriptor
func NewArg(configs ...ConfigureArgumentFunc) *Descriptor {
	argument := &Descriptor{}
	for _, config := range configs {
		config(argument, nil)
	}
	if argument.Key == "" {
		argument.Key = argument.defaultKey()
	}

	return argument
}

// Set configures the Descriptor with the provided ConfigureArgumentFunc(s)
// and returns an error if a configuration results in an error.
func (d *Descriptor) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return err
		}
	}
	if d.Key == "" {
		d.Key = d.defaultKey()
	}
	return nil
}

// UpdateRule derives the update rule from the argument's kind: flags are
// nullary, options and positionals unary.
func (d *Descriptor) UpdateRule() UpdateRule {
	if d.Kind == Flag {
		return Nullary
	}
	return Unary
}

// IsOptional reports whether the argument may be absent.
func (d *Descriptor) IsOptional() bool {
	return !d.Required
}

// String returns a short human-readable rendering of the descriptor,
// suitable for diagnostics.
func (d *Descriptor) String() string {
	if len(d.Names) > 0 {
		parts := make([]string, 0, len(d.Names))
		for _, n := range d.Names {
			parts = append(parts, n.String())
		}
		return strings.Join(parts, "/")
	}
	if d.ValueName != "" {
		return fmt.Sprintf("<%s>", d.ValueName)
	}
	return fmt.Sprintf("<%s>", d.Key)
}

func (d *Descriptor) defaultKey() string {
	for _, n := range d.Names {
		if n.Kind == LongName {
			return n.Text
		}
	}
	if len(d.Names) > 0 {
		return d.Names[0].Text
	}
	return d.ValueName
}

// convert applies the descriptor's converter to one raw value.
func (d *Descriptor) convert(raw string) (any, error) {
	if d.Converter != nil {
		return d.Converter(raw)
	}
	return raw, nil
}

// hasName reports whether the descriptor answers to name, exactly.
func (d *Descriptor) hasName(name ArgumentName) bool {
	for _, n := range d.Names {
		if n == name {
			return true
		}
	}
	return false
}

func (d *Descriptor) hasInvertedName(name ArgumentName) bool {
	for _, n := range d.InvertedNames {
		if n == name {
			return true
		}
	}
	return false
}

// takesValue reports whether an occurrence of the argument consumes a value.
func (d *Descriptor) takesValue() bool {
	return d.UpdateRule() == Unary
}

func (d *Descriptor) displayValueName() string {
	if d.ValueName != "" {
		return d.ValueName
	}
	return "value"
}
