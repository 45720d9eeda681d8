package declarg

import (
	"fmt"

	"github.com/corvade/declarg/util"
)

// WithKey sets the stable identity of the argument. When unset, the key is
// derived from the first long name.
func WithKey(key string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Key = key
	}
}

// WithLong adds a two-dash long name (--name)
func WithLong(name string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Names = append(argument.Names, Long(name))
	}
}

// WithShort adds a one-dash single-character name (-n). Short flags may be
// clustered on the command line (-ab is -a -b) when all but the last are
// flags.
func WithShort(name rune) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Names = append(argument.Names, Short(name))
	}
}

// WithSingleDashLong adds a one-dash multi-character name (-name). Matched
// exactly - single-dash long names neither abbreviate nor cluster.
func WithSingleDashLong(name string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Names = append(argument.Names, LongSingleDash(name))
	}
}

// WithInverted adds a long name whose occurrence sets a flag to false, the
// --color/--no-color pattern. Only flags support inversion.
func WithInverted(name string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.InvertedNames = append(argument.InvertedNames, Long(name))
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Description = description
	}
}

// WithValueName sets the value placeholder shown in usage output
func WithValueName(name string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.ValueName = name
	}
}

// WithDefaultValue sets the default value for the argument. The default is
// converted and delivered when the argument is absent from the command line.
func WithDefaultValue(defaultValue string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.DefaultValue = defaultValue
	}
}

// WithDefaultText overrides how the default value is described in usage output
func WithDefaultText(text string) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.DefaultText = text
	}
}

// SetRequired when true, the argument must be supplied on the command-line
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Required = required
	}
}

// SetHidden when true, the argument is omitted from usage output
func SetHidden(hidden bool) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Hidden = hidden
	}
}

// WithStrategy selects the parsing strategy governing how many tokens the
// argument consumes once matched
func WithStrategy(strategy Strategy) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Strategy = strategy
	}
}

// AsFlag marks the argument as a presence-only flag
func AsFlag() ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Kind = Flag
	}
}

// AsPositional marks the argument as positional. Positionals carry no names;
// any names already configured result in an error.
func AsPositional() ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		if len(argument.Names) > 0 {
			*err = fmt.Errorf("positional argument %s cannot carry names", argument.Key)
			return
		}
		argument.Kind = Positional
	}
}

// WithRepeating allows the argument to collect any number of values
func WithRepeating() ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Cardinality = Repeating
	}
}

// WithConverter sets the string-to-value conversion applied to each raw value
func WithConverter(converter ConvertFunc) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		argument.Converter = converter
	}
}

// WithBinding binds the argument to a pointer which is populated after a
// fully successful parse. The pointed-to type also determines the value
// conversion when no explicit converter is configured. Supported targets are
// string, bool, the common numeric types, time.Time, time.Duration and
// slices thereof.
func WithBinding(ptr any) ConfigureArgumentFunc {
	return func(argument *Descriptor, err *error) {
		if ptr == nil {
			*err = ErrBindNilPointer
			return
		}
		converter, ok := util.ConverterFor(ptr)
		if !ok {
			*err = fmt.Errorf(FmtErrorWithString, ErrUnsupportedBinding, fmt.Sprintf("%T", ptr))
			return
		}
		argument.bindTo = ptr
		if argument.Converter == nil {
			argument.Converter = converter
		}
	}
}
