package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[1]s_completion() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

    _arguments -C \`, data.Program))

	for _, f := range data.Flags {
		g.writeFlag(&script, f)
	}

	script.WriteString(`
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _values 'commands' \`)

	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(`
                '%s[%s]' \`, cmd.Name, escapeZsh(cmd.Description)))
	}

	script.WriteString(`
            ;;
        args)
            case $words[1] in`)

	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(`
                %s)
                    _arguments \`, cmd.Name))
		for _, f := range cmd.Flags {
			g.writeFlag(&script, f)
		}
		for _, sub := range cmd.Subcommands {
			script.WriteString(fmt.Sprintf(`
                        '1:subcommand:(%s)' \`, sub.Name))
		}
		script.WriteString(`
                    ;;`)
	}

	script.WriteString(fmt.Sprintf(`
            esac
            ;;
    esac
}

__%[1]s_completion "$@"
`, data.Program))

	return script.String()
}

func (g *ZshGenerator) writeFlag(script *strings.Builder, f Flag) {
	value := ""
	if f.TakesValue {
		value = ":value:"
	}
	for _, word := range f.words() {
		script.WriteString(fmt.Sprintf(`
        '*%s[%s]%s' \`, word, escapeZsh(f.Description), value))
	}
}
