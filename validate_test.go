package declarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func failures(issues []Issue) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Severity == SeverityFailure {
			out = append(out, issue)
		}
	}
	return out
}

func TestValidate_CleanSchema(t *testing.T) {
	cmd := NewCommand(
		WithArguments(
			NewArg(WithLong("verbose"), WithShort('v'), AsFlag()),
			NewArg(WithLong("output"), WithShort('o')),
			NewArg(WithKey("file"), WithValueName("file"), AsPositional()),
		),
		WithSubcommands(NewCommand(WithName("add"))),
	)

	assert.Empty(t, validateTree(cmd), "a well-formed schema should produce no findings")
}

func TestValidate_PositionalAfterRepeating(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("files"), AsPositional(), WithRepeating()),
		NewArg(WithKey("dest"), AsPositional()),
	))

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "repeating positional")
	assert.Equal(t, "dest", issues[0].Key)
}

func TestValidate_DuplicateNames(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("a"), WithLong("dup")),
		NewArg(WithKey("b"), WithLong("dup")),
	))

	issues := failures(validateTree(cmd))
	assert.NotEmpty(t, issues, "two arguments may not share a name")
}

func TestValidate_InvertedNameCollision(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("color"), WithLong("color"), AsFlag(), WithInverted("no-color")),
		NewArg(WithKey("other"), WithLong("no-color"), AsFlag()),
	))

	issues := failures(validateTree(cmd))
	assert.NotEmpty(t, issues, "inverted names participate in uniqueness")
}

func TestValidate_SameNameTextDifferentKind(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("a"), WithLong("v")),
		NewArg(WithKey("b"), WithShort('v')),
	))

	assert.Empty(t, failures(validateTree(cmd)), "--v and -v are distinct names")
}

func TestValidate_NamedWithoutNames(t *testing.T) {
	cmd := NewCommand(WithArguments(&Descriptor{Key: "ghost", Kind: Option}))

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "never be matched")
}

func TestValidate_CollectorNeedsNoNames(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("rest"), WithStrategy(AllUnrecognized), WithRepeating()),
	))

	assert.Empty(t, failures(validateTree(cmd)))
}

func TestValidate_InvertedOnNonFlag(t *testing.T) {
	cmd := NewCommand(WithArguments(
		&Descriptor{Key: "out", Kind: Option, Names: []ArgumentName{Long("out")}, InvertedNames: []ArgumentName{Long("no-out")}},
	))

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "not a flag")
}

func TestValidate_FlagWithNonBooleanDefault(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithLong("verbose"), AsFlag(), WithDefaultValue("loud")),
	))

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "non-boolean default")
}

func TestValidate_AlwaysTrueFlagWarns(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithLong("color"), AsFlag(), WithDefaultValue("true")),
	))

	issues := validateTree(cmd)
	assert.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity, "an always-true flag parses fine and should only warn")
	assert.Empty(t, failures(issues))
}

func TestValidate_AlwaysTrueFlagWithInversionIsFine(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithLong("color"), AsFlag(), WithDefaultValue("true"), WithInverted("no-color")),
	))

	assert.Empty(t, validateTree(cmd))
}

func TestValidate_SubcommandNameCollision(t *testing.T) {
	cmd := NewCommand(WithSubcommands(
		NewCommand(WithName("add")),
		NewCommand(WithName("remove"), WithAliases("add")),
	))

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "add")
}

func TestValidate_DanglingDefaultSubcommand(t *testing.T) {
	cmd := NewCommand(
		WithDefaultSubcommand("serve"),
		WithSubcommands(NewCommand(WithName("run"))),
	)

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "serve")
}

func TestValidate_DescendsIntoSubcommands(t *testing.T) {
	cmd := NewCommand(WithSubcommands(
		NewCommand(WithName("add"), WithArguments(
			NewArg(WithKey("a"), WithLong("dup")),
			NewArg(WithKey("b"), WithLong("dup")),
		)),
	))

	issues := failures(validateTree(cmd))
	assert.NotEmpty(t, issues)
	assert.Equal(t, []string{"add"}, issues[0].CommandPath, "findings should locate their command")
}

func TestValidate_DuplicateKeys(t *testing.T) {
	cmd := NewCommand(WithArguments(
		NewArg(WithKey("same"), WithLong("one")),
		NewArg(WithKey("same"), WithLong("two")),
	))

	issues := failures(validateTree(cmd))
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "declared twice")
}
