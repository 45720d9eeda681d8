package declarg

import "strings"

// Group is a named bundle of descriptors embedded in a Command or in another
// Group. Composition re-scopes every nested descriptor's identity by
// prefixing the embedding group's key ("transport.retries").
type Group struct {
	Key       string
	Arguments []*Descriptor
	Groups    []*Group
}

// Command is one node of the subcommand tree: its own arguments, its
// configuration and an ordered list of child commands. The root Command has
// no name. The tree is immutable during parsing; child relationships are
// tree edges only.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Hidden      bool
	// DefaultSubcommand names the child dispatched into when no positional
	// value matches a child name. No token is consumed for the implicit name.
	DefaultSubcommand string
	// HelpNames overrides the names which trigger a help request for this
	// command. When empty the parser-level help names apply.
	HelpNames   []ArgumentName
	Arguments   []*Descriptor
	Groups      []*Group
	Subcommands []*Command
}

// NewCommand creates a command configured with the given option functions
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	command := &Command{}
	command.Set(configs...)

	return command
}

// Set configures the command with the provided ConfigureCommandFunc(s)
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// Visit traverses the command and its subcommands from top to bottom. The
// visitor returns false to prune the subtree.
func (c *Command) Visit(visitor func(cmd *Command, level int) bool, level int) {
	if visitor != nil {
		if !visitor(c, level) {
			return
		}
	}

	for _, cmd := range c.Subcommands {
		cmd.Visit(visitor, level+1)
	}
}

// Find returns the direct child matching name or one of its aliases, nil
// when there is none.
func (c *Command) Find(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
		for _, alias := range sub.Aliases {
			if alias == name {
				return sub
			}
		}
	}

	return nil
}

// SubcommandNames returns the visible child names in declaration order,
// used in missing-subcommand diagnostics and usage output.
func (c *Command) SubcommandNames() []string {
	names := make([]string, 0, len(c.Subcommands))
	for _, sub := range c.Subcommands {
		if sub.Hidden {
			continue
		}
		names = append(names, sub.Name)
	}

	return names
}

// Path joins a command path slice into the display form used in usage
// synopses ("remote add").
func Path(path []string) string {
	return strings.Join(path, " ")
}

func (c *Command) defaultChild() *Command {
	if c.DefaultSubcommand == "" {
		return nil
	}
	return c.Find(c.DefaultSubcommand)
}

func (c *Command) helpNames(fallback []ArgumentName) []ArgumentName {
	if len(c.HelpNames) > 0 {
		return c.HelpNames
	}
	return fallback
}
