package declarg

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
)

// ArgumentKind classifies what a Descriptor matches on the command line.
type ArgumentKind int

const (
	// Option is a named argument which consumes a value (--output file.txt).
	Option ArgumentKind = iota
	// Flag is a named argument whose presence alone updates its value (--verbose).
	Flag
	// Positional is an unnamed argument matched by position.
	Positional
)

// Cardinality describes how many values a Descriptor may collect.
type Cardinality int

const (
	// Single accepts exactly one value (or one occurrence for flags).
	Single Cardinality = iota
	// Repeating accepts any number of values or occurrences.
	Repeating
)

// UpdateRule describes how an occurrence of a named argument updates its value.
// Flags are Nullary, options and positionals are Unary. The rule is derived
// from the Descriptor's kind so the two can never disagree.
type UpdateRule int

const (
	// Unary consumes exactly one value per occurrence.
	Unary UpdateRule = iota
	// Nullary updates on presence alone and never consumes a value token.
	Nullary
)

// Strategy governs how many and which tokens a named argument consumes once
// its name has been matched.
type Strategy int

const (
	// Default uses an attached value when present, otherwise consumes the next
	// token only when it is a plain value. A following named occurrence is a
	// missing-value diagnostic, never silently consumed.
	Default Strategy = iota
	// ScanningForValue scans forward past recognized named occurrences to the
	// next plain value. Useful for options whose value the user may place
	// after other flags.
	ScanningForValue
	// Unconditional consumes the very next token even when it looks like a
	// flag. Useful for options whose value may itself begin with a dash.
	Unconditional
	// UpToNextOption consumes every following plain value until the next named
	// occurrence or the end of input.
	UpToNextOption
	// AllRemainingInput consumes everything from this point to the end of
	// input verbatim, bypassing all further interpretation.
	AllRemainingInput
	// PostTerminator matches only values which occur after the "--" terminator.
	PostTerminator
	// AllUnrecognized collects every occurrence and value no other descriptor
	// claimed instead of reporting unknown-option diagnostics.
	AllUnrecognized
)

// ConvertFunc converts the raw command-line string of one value into its
// native representation. Returning an error surfaces as an invalid-value
// diagnostic naming the descriptor and the offending input.
type ConvertFunc func(value string) (any, error)

// ConfigureArgumentFunc is used when defining Descriptor options
type ConfigureArgumentFunc func(argument *Descriptor, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// NameConversionFunc converts a struct field name to a command or flag name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-flag-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_flag_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToScreamingSnake converts a string to screaming snake case "MY_FLAG_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myFlagName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myflagname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultCommandNameConverter = ToLowerCase
	DefaultFlagNameConverter    = ToKebabCase
	DefaultGroupKeyConverter    = ToLowerCamel
)

var (
	ErrUnknownOption           = errors.New("unknown option")
	ErrAmbiguousAbbreviation   = errors.New("ambiguous abbreviation")
	ErrMissingValue            = errors.New("missing value")
	ErrInvalidValue            = errors.New("invalid value")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrUnexpectedExtraValues   = errors.New("unexpected extra values")
	ErrMissingSubcommand       = errors.New("missing subcommand")
	ErrSchemaInvalid           = errors.New("invalid argument schema")
	ErrHelpRequested           = errors.New("help requested")
	ErrUnsupportedBinding      = errors.New("unsupported binding type")
	ErrBindNilPointer          = errors.New("can't bind argument to nil")
	ErrVariableNotAPointer     = errors.New("variable is not a pointer")
	ErrNoValidTags             = errors.New("struct contains no bindable fields")
	ErrCommandNotFound         = errors.New("command not found")
)

const (
	FmtErrorWithString = "%w: %s"
)

// keyPathSeparator joins group keys with descriptor keys into stable
// identities ("transport.retries").
const keyPathSeparator = "."
