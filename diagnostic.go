package declarg

import (
	"fmt"
	"strings"
)

// DiagnosticKind is the closed taxonomy of parse and validation failures.
type DiagnosticKind int

const (
	// UnknownOption reports a named occurrence no descriptor answers to.
	UnknownOption DiagnosticKind = iota
	// AmbiguousAbbreviation reports a long-name prefix matching several
	// distinct arguments.
	AmbiguousAbbreviation
	// MissingValue reports an option whose occurrence found no value to consume.
	MissingValue
	// InvalidValue reports a value the descriptor's conversion rejected.
	InvalidValue
	// MissingRequiredArgument reports a required argument with no occurrence
	// and no default.
	MissingRequiredArgument
	// UnexpectedExtraValues reports values left over once every positional
	// has been satisfied.
	UnexpectedExtraValues
	// MissingSubcommand reports a command which requires a subcommand but
	// received none.
	MissingSubcommand
	// SchemaInvalid aggregates the validator failures of a self-contradictory
	// schema. Parsing is never attempted against an invalid schema.
	SchemaInvalid
	// HelpRequested reports an occurrence of a help trigger name. Not a
	// failure; carries the command whose usage should be rendered.
	HelpRequested
)

// Severity distinguishes validator findings which block parsing from those
// which merely signal a likely authoring mistake.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityFailure
)

// Issue is a single validator finding over a composed argument set.
type Issue struct {
	Severity Severity
	// Key is the scoped identity of the offending descriptor, when one can
	// be named.
	Key string
	// CommandPath locates the command whose argument set the finding is about.
	CommandPath []string
	Message     string
}

func (i Issue) String() string {
	where := Path(i.CommandPath)
	if where == "" {
		where = "root"
	}
	return fmt.Sprintf("[%s] %s", where, i.Message)
}

// Diagnostic is the engine's error value. It implements error, supports
// errors.Is against the package sentinels, and carries the command in scope
// at the point of failure so a usage synopsis can always be rendered, even
// when the failure occurred deep in a subcommand chain.
type Diagnostic struct {
	Kind       DiagnosticKind
	Name       ArgumentName
	Candidates []string
	Descriptor *Descriptor
	Input      string
	Values     []string
	Available  []string
	Issues     []Issue
	// Command is the node in scope when the diagnostic was produced.
	Command     *Command
	CommandPath []string

	cause error
}

// Error renders the user-facing message for the diagnostic.
func (d *Diagnostic) Error() string {
	switch d.Kind {
	case UnknownOption:
		return fmt.Sprintf("unknown option '%s'", d.Name)
	case AmbiguousAbbreviation:
		return fmt.Sprintf("'%s' is ambiguous: could be %s", d.Name, strings.Join(d.Candidates, ", "))
	case MissingValue:
		return fmt.Sprintf("missing value for '%s' (expected <%s>)", d.Descriptor, d.Descriptor.displayValueName())
	case InvalidValue:
		msg := fmt.Sprintf("invalid value %q for '%s'", d.Input, d.Descriptor)
		if d.cause != nil {
			msg += ": " + d.cause.Error()
		}
		return msg
	case MissingRequiredArgument:
		return fmt.Sprintf("missing required argument '%s'", d.Descriptor)
	case UnexpectedExtraValues:
		return fmt.Sprintf("unexpected extra values: %s", strings.Join(d.Values, " "))
	case MissingSubcommand:
		return fmt.Sprintf("expected a subcommand (one of: %s)", strings.Join(d.Available, ", "))
	case SchemaInvalid:
		msgs := make([]string, 0, len(d.Issues))
		for _, issue := range d.Issues {
			msgs = append(msgs, issue.String())
		}
		return fmt.Sprintf("invalid argument schema: %s", strings.Join(msgs, "; "))
	case HelpRequested:
		return "help requested"
	default:
		return "argument parsing failed"
	}
}

// Unwrap exposes the underlying cause, typically a conversion error.
func (d *Diagnostic) Unwrap() error {
	return d.cause
}

// Is maps each diagnostic kind onto its package sentinel so callers can use
// errors.Is without inspecting Kind.
func (d *Diagnostic) Is(target error) bool {
	return target == d.sentinel()
}

func (d *Diagnostic) sentinel() error {
	switch d.Kind {
	case UnknownOption:
		return ErrUnknownOption
	case AmbiguousAbbreviation:
		return ErrAmbiguousAbbreviation
	case MissingValue:
		return ErrMissingValue
	case InvalidValue:
		return ErrInvalidValue
	case MissingRequiredArgument:
		return ErrMissingRequiredArgument
	case UnexpectedExtraValues:
		return ErrUnexpectedExtraValues
	case MissingSubcommand:
		return ErrMissingSubcommand
	case SchemaInvalid:
		return ErrSchemaInvalid
	case HelpRequested:
		return ErrHelpRequested
	default:
		return nil
	}
}

// at stamps the command context onto the diagnostic and returns it.
func (d *Diagnostic) at(cmd *Command, path []string) *Diagnostic {
	if d.Command == nil {
		d.Command = cmd
		d.CommandPath = path
	}
	return d
}
