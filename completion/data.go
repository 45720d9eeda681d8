// Package completion renders shell completion scripts from a flattened,
// shell-neutral view of a command tree.
package completion

import (
	"fmt"
)

// Flag is one named argument as the shells see it: long spellings without the
// leading dashes, short spellings as single characters.
type Flag struct {
	Long        []string
	Short       []string
	Description string
	// TakesValue marks flags which expect a following value, so the shells
	// can defer file completion to the next word.
	TakesValue bool
}

// Command is one node of the flattened command tree.
type Command struct {
	Name        string
	Description string
	Flags       []Flag
	Subcommands []Command
}

// Data is the complete input of one generator run.
type Data struct {
	Program  string
	Flags    []Flag
	Commands []Command
}

// Generator renders a completion script for one shell.
type Generator interface {
	Generate(data Data) string
}

// GetGenerator returns the generator for the named shell.
func GetGenerator(shell string) (Generator, error) {
	switch shell {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell: %s", shell)
	}
}

// words renders every spelling of a flag with its dashes restored.
func (f Flag) words() []string {
	out := make([]string, 0, len(f.Long)+len(f.Short))
	for _, l := range f.Long {
		out = append(out, "--"+l)
	}
	for _, s := range f.Short {
		out = append(out, "-"+s)
	}
	return out
}
