// Package declarg is a declarative command-line argument parsing engine.
//
// A host program describes its interface once, as a tree of Commands carrying
// Descriptor declarations, and hands the tree to a Parser. The parser
// validates the schema, tokenizes the argument vector, matches it in two
// phases (named arguments with subcommand dispatch, then positionals) and
// delivers converted values through a ValueSet, through bound pointers, or
// both. Every failure is a *Diagnostic drawn from a closed taxonomy and
// answers to the package's sentinel errors via errors.Is.
package declarg

import (
	"sync"

	"github.com/corvade/declarg/completion"
	"github.com/corvade/declarg/parse"
)

// Parser drives parsing for one command tree. A Parser is cheap to construct,
// holds no per-parse state and is safe for concurrent Parse calls; all
// mutable matching state lives in the invocation.
type Parser struct {
	root          *Command
	abbreviations bool
	autoHelp      bool
	helpNames     []ArgumentName

	validateOnce sync.Once
	issues       []Issue
}

// NewParser builds a parser over root. Schema validation is deferred to the
// first Parse or Validate call so declaration mistakes surface exactly once.
func NewParser(root *Command, configs ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{
		root:      root,
		autoHelp:  true,
		helpNames: []ArgumentName{Long("help"), Short('h')},
	}
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate runs the full validator pipeline over the command tree and returns
// every finding, warnings included. The pipeline runs at most once per
// parser; the findings are cached.
func (p *Parser) Validate() []Issue {
	p.validateOnce.Do(func() {
		p.issues = validateTree(p.root)
	})
	return p.issues
}

// Parse matches args against the command tree and returns the populated
// result set. On failure it returns a *Diagnostic and leaves every bound
// pointer untouched. A schema with validator failures never parses; warnings
// alone do not block.
func (p *Parser) Parse(args []string) (*ValueSet, error) {
	return p.parse(args, nil)
}

// ParseString splits a single command line shell-style and parses it. Useful
// for tests and for hosts reading command lines from configuration.
func (p *Parser) ParseString(commandLine string) (*ValueSet, error) {
	args, err := parse.Split(commandLine)
	if err != nil {
		return nil, err
	}
	return p.Parse(args)
}

// ParseWithDefaults parses args with per-invocation default overrides, keyed
// by scoped descriptor identity. Overrides replace declared defaults for
// absent arguments only; explicit occurrences always win.
func (p *Parser) ParseWithDefaults(defaults map[string]string, args []string) (*ValueSet, error) {
	return p.parse(args, defaults)
}

func (p *Parser) parse(args []string, defaults map[string]string) (*ValueSet, error) {
	if failures := p.failures(); len(failures) > 0 {
		return nil, (&Diagnostic{Kind: SchemaInvalid, Issues: failures}).at(p.root, nil)
	}

	tokens := Tokenize(args)
	m := &matcher{
		parser:     p,
		tokens:     tokens,
		claimed:    make([]bool, len(tokens)),
		values:     newValueSet(),
		defaults:   defaults,
		terminator: -1,
	}

	if diag := m.matchCommand(p.root, nil, 0, len(tokens)); diag != nil {
		return nil, diag
	}
	if diag := m.applyBindings(); diag != nil {
		return nil, diag.at(m.values.command, m.values.commandPath)
	}

	return m.values, nil
}

func (p *Parser) failures() []Issue {
	var failures []Issue
	for _, issue := range p.Validate() {
		if issue.Severity == SeverityFailure {
			failures = append(failures, issue)
		}
	}
	return failures
}

// CompletionData flattens the command tree into the shell-neutral form the
// completion generators consume.
func (p *Parser) CompletionData(program string) completion.Data {
	data := completion.Data{Program: program}
	data.Flags = completionFlags(p.root)
	for _, sub := range p.root.Subcommands {
		data.Commands = append(data.Commands, completionCommand(sub))
	}
	return data
}

// GenerateCompletion renders a completion script for the named shell
// ("bash" or "zsh").
func (p *Parser) GenerateCompletion(shell, program string) (string, error) {
	gen, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}
	return gen.Generate(p.CompletionData(program)), nil
}

func completionCommand(cmd *Command) completion.Command {
	out := completion.Command{Name: cmd.Name, Description: cmd.Description}
	out.Flags = completionFlags(cmd)
	for _, sub := range cmd.Subcommands {
		if sub.Hidden {
			continue
		}
		out.Subcommands = append(out.Subcommands, completionCommand(sub))
	}
	return out
}

func completionFlags(cmd *Command) []completion.Flag {
	var flags []completion.Flag
	for _, d := range Compose(cmd).Descriptors() {
		if d.Hidden || d.Kind == Positional {
			continue
		}
		f := completion.Flag{Description: d.Description, TakesValue: d.takesValue()}
		for _, n := range d.Names {
			switch n.Kind {
			case ShortName:
				f.Short = append(f.Short, n.Text)
			default:
				f.Long = append(f.Long, n.Text)
			}
		}
		for _, n := range d.InvertedNames {
			if n.Kind != ShortName {
				f.Long = append(f.Long, n.Text)
			}
		}
		flags = append(flags, f)
	}
	return flags
}
