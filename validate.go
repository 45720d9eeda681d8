package declarg

import (
	"fmt"
	"strconv"

	"github.com/ef-ds/deque/v2"
)

// setValidator is one consistency check over a composed argument set. Each
// validator is pure and runs independently of any input tokens.
type setValidator func(path []string, set *ArgumentSet) []Issue

// The fixed validation pipeline. Every validator runs regardless of earlier
// findings so a host sees all structural problems at once.
var validators = []setValidator{
	validatePositionalOrder,
	validateUniqueNames,
	validateValueDelivery,
	validateAlwaysTrueFlags,
}

// validateTree runs the validator pipeline over the composed argument set of
// every command in the tree, breadth first, concatenating all findings.
func validateTree(root *Command) []Issue {
	type nodeRef struct {
		cmd  *Command
		path []string
	}

	var issues []Issue
	var pending deque.Deque[nodeRef]
	pending.PushBack(nodeRef{cmd: root})

	for pending.Len() > 0 {
		n, _ := pending.PopFront()
		set := Compose(n.cmd)
		for _, validator := range validators {
			issues = append(issues, validator(n.path, set)...)
		}
		issues = append(issues, validateSubcommands(n.path, n.cmd)...)
		for _, sub := range n.cmd.Subcommands {
			subPath := append(append([]string{}, n.path...), sub.Name)
			pending.PushBack(nodeRef{cmd: sub, path: subPath})
		}
	}

	return issues
}

// validatePositionalOrder rejects schemas in which any positional is
// declared after a repeating positional: the split of values between the
// repeating positional and its successors would be undecidable, so the
// schema is rejected up front instead of guessed at parse time.
func validatePositionalOrder(path []string, set *ArgumentSet) []Issue {
	var issues []Issue
	var repeating *Descriptor
	for _, d := range set.Descriptors() {
		if d.Kind != Positional {
			continue
		}
		if repeating != nil {
			issues = append(issues, Issue{
				Severity:    SeverityFailure,
				Key:         d.Key,
				CommandPath: path,
				Message: fmt.Sprintf("positional argument '%s' is declared after repeating positional '%s'",
					d.Key, repeating.Key),
			})
		}
		if d.Cardinality == Repeating {
			repeating = d
		}
	}
	return issues
}

// validateUniqueNames rejects schemas in which two descriptors of the same
// composed set declare an identical name (same kind and text). Inverted
// names participate: a flag's --no-color may not collide with another
// argument's --no-color.
func validateUniqueNames(path []string, set *ArgumentSet) []Issue {
	var issues []Issue
	owner := map[ArgumentName]string{}

	claim := func(d *Descriptor, n ArgumentName) {
		if prev, taken := owner[n]; taken {
			if prev == d.Key {
				return
			}
			issues = append(issues, Issue{
				Severity:    SeverityFailure,
				Key:         d.Key,
				CommandPath: path,
				Message:     fmt.Sprintf("name '%s' is declared by both '%s' and '%s'", n, prev, d.Key),
			})
			return
		}
		owner[n] = d.Key
	}

	for _, d := range set.Descriptors() {
		for _, n := range d.Names {
			claim(d, n)
		}
		for _, n := range d.InvertedNames {
			claim(d, n)
		}
	}

	return issues
}

// validateValueDelivery rejects descriptors whose value could never be
// assembled into a result: missing or duplicate identities, names the
// matcher can never resolve, and shape violations between kind and names.
func validateValueDelivery(path []string, set *ArgumentSet) []Issue {
	var issues []Issue
	keys := map[string]bool{}

	fail := func(d *Descriptor, format string, args ...any) {
		issues = append(issues, Issue{
			Severity:    SeverityFailure,
			Key:         d.Key,
			CommandPath: path,
			Message:     fmt.Sprintf(format, args...),
		})
	}

	for _, d := range set.Descriptors() {
		if d.Key == "" {
			fail(d, "argument '%s' has no identity and its value cannot be delivered", d)
			continue
		}
		if keys[d.Key] {
			fail(d, "identity '%s' is declared twice; the second value cannot be delivered", d.Key)
		}
		keys[d.Key] = true

		switch d.Kind {
		case Positional:
			if len(d.Names) > 0 {
				fail(d, "positional argument '%s' cannot carry names", d.Key)
			}
		default:
			if len(d.Names) == 0 && d.Strategy != AllUnrecognized {
				fail(d, "named argument '%s' declares no names and can never be matched", d.Key)
			}
		}
		for _, n := range d.Names {
			if !n.IsValid() {
				fail(d, "argument '%s' declares malformed name '%s'", d.Key, n)
			}
		}
		if len(d.InvertedNames) > 0 && d.Kind != Flag {
			fail(d, "argument '%s' declares inverted names but is not a flag", d.Key)
		}
		if d.Kind == Flag && d.DefaultValue != "" {
			if _, err := strconv.ParseBool(d.DefaultValue); err != nil {
				fail(d, "flag '%s' has non-boolean default %q", d.Key, d.DefaultValue)
			}
		}
	}

	return issues
}

// validateAlwaysTrueFlags warns about flags which default to true with no
// inversion mechanism: such a flag can never observably be false. A warning
// rather than a failure because parsing still works; the declaration is just
// a likely authoring mistake.
func validateAlwaysTrueFlags(path []string, set *ArgumentSet) []Issue {
	var issues []Issue
	for _, d := range set.Descriptors() {
		if d.Kind != Flag || len(d.InvertedNames) > 0 {
			continue
		}
		if on, err := strconv.ParseBool(d.DefaultValue); err == nil && on {
			issues = append(issues, Issue{
				Severity:    SeverityWarning,
				Key:         d.Key,
				CommandPath: path,
				Message:     fmt.Sprintf("flag '%s' defaults to true and declares no inverted name; it can never be false", d.Key),
			})
		}
	}
	return issues
}

// validateSubcommands checks the command-level configuration: child name
// collisions and dangling default-subcommand references.
func validateSubcommands(path []string, cmd *Command) []Issue {
	var issues []Issue
	seen := map[string]string{}

	claim := func(sub *Command, name string) {
		if prev, taken := seen[name]; taken && prev != sub.Name {
			issues = append(issues, Issue{
				Severity:    SeverityFailure,
				CommandPath: path,
				Message:     fmt.Sprintf("subcommand name '%s' is used by both '%s' and '%s'", name, prev, sub.Name),
			})
			return
		}
		seen[name] = sub.Name
	}

	for _, sub := range cmd.Subcommands {
		claim(sub, sub.Name)
		for _, alias := range sub.Aliases {
			claim(sub, alias)
		}
	}

	if cmd.DefaultSubcommand != "" && cmd.Find(cmd.DefaultSubcommand) == nil {
		issues = append(issues, Issue{
			Severity:    SeverityFailure,
			CommandPath: path,
			Message:     fmt.Sprintf("default subcommand '%s' does not name a child", cmd.DefaultSubcommand),
		})
	}

	return issues
}
