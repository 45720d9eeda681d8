package declarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Find(t *testing.T) {
	root := NewCommand(WithSubcommands(
		NewCommand(WithName("add")),
		NewCommand(WithName("remove"), WithAliases("rm", "del")),
	))

	assert.Equal(t, "add", root.Find("add").Name)
	assert.Equal(t, "remove", root.Find("rm").Name, "aliases resolve to their command")
	assert.Nil(t, root.Find("bogus"))
}

func TestCommand_Visit(t *testing.T) {
	root := NewCommand(WithSubcommands(
		NewCommand(WithName("remote"), WithSubcommands(
			NewCommand(WithName("add")),
		)),
		NewCommand(WithName("status")),
	))

	var visited []string
	root.Visit(func(cmd *Command, level int) bool {
		visited = append(visited, cmd.Name)
		return cmd.Name != "remote"
	}, 0)

	assert.Equal(t, []string{"", "remote", "status"}, visited, "returning false prunes the subtree")
}

func TestCommand_SubcommandNames(t *testing.T) {
	root := NewCommand(WithSubcommands(
		NewCommand(WithName("add")),
		NewCommand(WithName("debug"), WithCommandHidden(true)),
	))

	assert.Equal(t, []string{"add"}, root.SubcommandNames())
}

func TestPath(t *testing.T) {
	assert.Equal(t, "remote add", Path([]string{"remote", "add"}))
	assert.Equal(t, "", Path(nil))
}

func TestCommand_HelpNames(t *testing.T) {
	fallback := []ArgumentName{Long("help")}

	plain := NewCommand()
	assert.Equal(t, fallback, plain.helpNames(fallback))

	custom := NewCommand(WithHelpNames(Long("usage")))
	assert.Equal(t, []ArgumentName{Long("usage")}, custom.helpNames(fallback))
}
