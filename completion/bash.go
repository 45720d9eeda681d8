package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev path
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Walk the typed words to find the deepest command
    path=""
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            path="${path:+$path }${COMP_WORDS[i]}"
        fi
    done

    case "$path" in`, data.Program))

	g.writeCase(&script, "", data.Flags, data.Commands)
	var walk func(prefix string, cmds []Command)
	walk = func(prefix string, cmds []Command) {
		for _, cmd := range cmds {
			path := cmd.Name
			if prefix != "" {
				path = prefix + " " + cmd.Name
			}
			g.writeCase(&script, path, cmd.Flags, cmd.Subcommands)
			walk(path, cmd.Subcommands)
		}
	}
	walk("", data.Commands)

	script.WriteString(fmt.Sprintf(`
    esac
}

complete -F __%[1]s_completion %[1]s
`, data.Program))

	return script.String()
}

func (g *BashGenerator) writeCase(script *strings.Builder, path string, flags []Flag, subs []Command) {
	var words []string
	for _, f := range flags {
		words = append(words, f.words()...)
	}
	for _, sub := range subs {
		words = append(words, sub.Name)
	}

	pattern := `""`
	if path != "" {
		pattern = fmt.Sprintf("%q", path)
	}
	script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;`, pattern, escapeBash(strings.Join(words, " "))))
}
