package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func demoData() Data {
	return Data{
		Program: "widgets",
		Flags: []Flag{
			{Long: []string{"verbose"}, Short: []string{"v"}, Description: "chatty logging"},
			{Long: []string{"output"}, Short: []string{"o"}, Description: "write here", TakesValue: true},
		},
		Commands: []Command{
			{
				Name:        "add",
				Description: "Add a widget",
				Flags:       []Flag{{Long: []string{"force"}, Description: "overwrite"}},
				Subcommands: []Command{{Name: "remote"}},
			},
			{Name: "remove", Description: "Remove a widget"},
		},
	}
}

func TestGetGenerator(t *testing.T) {
	gen, err := GetGenerator("bash")
	assert.NoError(t, err)
	assert.IsType(t, &BashGenerator{}, gen)

	gen, err = GetGenerator("zsh")
	assert.NoError(t, err)
	assert.IsType(t, &ZshGenerator{}, gen)

	_, err = GetGenerator("tcsh")
	assert.Error(t, err)
}

func TestBashGenerator(t *testing.T) {
	script := (&BashGenerator{}).Generate(demoData())

	assert.Contains(t, script, "__widgets_completion")
	assert.Contains(t, script, "complete -F __widgets_completion widgets")
	assert.Contains(t, script, "--verbose")
	assert.Contains(t, script, "-v")
	assert.Contains(t, script, "add")
	assert.Contains(t, script, "--force")
	assert.Contains(t, script, `"add remote"`, "nested commands complete under their path")
}

func TestZshGenerator(t *testing.T) {
	script := (&ZshGenerator{}).Generate(demoData())

	assert.Contains(t, script, "#compdef widgets")
	assert.Contains(t, script, "--verbose")
	assert.Contains(t, script, "chatty logging")
	assert.Contains(t, script, "add")
	assert.Contains(t, script, "Remove a widget")
}

func TestFlagWords(t *testing.T) {
	f := Flag{Long: []string{"output", "outfile"}, Short: []string{"o"}}
	assert.Equal(t, []string{"--output", "--outfile", "-o"}, f.words())
}
