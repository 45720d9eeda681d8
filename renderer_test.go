package declarg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func demoCommand() *Command {
	return NewCommand(
		WithCommandDescription("Manage the widget store"),
		WithArguments(
			NewArg(WithLong("verbose"), WithShort('v'), AsFlag(), WithDescription("chatty logging")),
			NewArg(WithLong("output"), WithShort('o'), WithValueName("file"), WithDescription("write results here"), WithDefaultValue("out.txt")),
			NewArg(WithLong("token"), SetHidden(true)),
			NewArg(WithKey("name"), WithValueName("name"), AsPositional(), SetRequired(true)),
		),
		WithSubcommands(
			NewCommand(WithName("add"), WithCommandDescription("Add a widget")),
			NewCommand(WithName("debug"), WithCommandHidden(true)),
		),
	)
}

func TestRenderer_PrintUsage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "widgets")

	r.PrintUsage(demoCommand(), nil)
	out := buf.String()

	assert.Contains(t, out, "Usage: widgets")
	assert.Contains(t, out, "Manage the widget store")
	assert.Contains(t, out, "--verbose")
	assert.Contains(t, out, "-o, --output <file>")
	assert.Contains(t, out, "(default: out.txt)")
	assert.Contains(t, out, "<name>")
	assert.Contains(t, out, "(required)")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "Add a widget")
	assert.NotContains(t, out, "--token", "hidden arguments stay out of usage output")
	assert.NotContains(t, out, "debug", "hidden subcommands stay out of usage output")
}

func TestRenderer_SynopsisIncludesPath(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "widgets")

	r.PrintUsage(NewCommand(WithName("add")), []string{"remote", "add"})

	assert.Contains(t, buf.String(), "Usage: widgets remote add")
}

func TestRenderer_PrintDiagnostic(t *testing.T) {
	root := demoCommand()
	p, err := NewParser(root)
	assert.NoError(t, err)

	_, parseErr := p.Parse([]string{"--bogus"})
	assert.Error(t, parseErr)

	var buf bytes.Buffer
	NewRenderer(&buf, "widgets").PrintDiagnostic(parseErr)
	out := buf.String()

	assert.Contains(t, out, "Error: unknown option '--bogus'")
	assert.Contains(t, out, "Usage: widgets", "diagnostics are followed by the usage in scope")
}

func TestRenderer_HelpPrintsUsageWithoutError(t *testing.T) {
	p, err := NewParser(demoCommand())
	assert.NoError(t, err)

	_, parseErr := p.Parse([]string{"--help"})
	assert.ErrorIs(t, parseErr, ErrHelpRequested)

	var buf bytes.Buffer
	NewRenderer(&buf, "widgets").PrintDiagnostic(parseErr)
	out := buf.String()

	assert.NotContains(t, out, "Error:", "a help request is not an error")
	assert.Contains(t, out, "Usage: widgets")
}

func TestRenderer_SubcommandDiagnosticUsesItsUsage(t *testing.T) {
	root := NewCommand(WithSubcommands(
		NewCommand(WithName("add"), WithArguments(
			NewArg(WithKey("name"), WithValueName("name"), AsPositional(), SetRequired(true)),
		)),
	))
	p, err := NewParser(root)
	assert.NoError(t, err)

	_, parseErr := p.Parse([]string{"add"})
	assert.ErrorIs(t, parseErr, ErrMissingRequiredArgument)

	var buf bytes.Buffer
	NewRenderer(&buf, "widgets").PrintDiagnostic(parseErr)

	assert.Contains(t, buf.String(), "Usage: widgets add", "the synopsis names the failing subcommand")
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four", 16)
	assert.Equal(t, []string{"one two three", "four"}, lines)

	assert.Nil(t, wrap("", 40))

	lines = wrap("supercalifragilistic", 16)
	assert.Equal(t, []string{"supercalifragilistic"}, lines, "overlong words stand alone")

	for _, line := range wrap(strings.Repeat("word ", 50), 30) {
		assert.LessOrEqual(t, len(line), 30)
	}
}
