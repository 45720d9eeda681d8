package declarg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corvade/declarg/util"
)

const fallbackWidth = 80

// Renderer writes usage synopses and diagnostic messages. Output wraps to
// the terminal width when the writer is a terminal and to a fixed width
// otherwise, so piped output stays stable.
type Renderer struct {
	writer  io.Writer
	program string
	width   int
}

// NewRenderer creates a renderer for the given writer. The program name
// leads every synopsis.
func NewRenderer(writer io.Writer, program string) *Renderer {
	width := fallbackWidth
	if f, ok := writer.(*os.File); ok {
		width = util.TerminalWidth(f, fallbackWidth)
	}
	return &Renderer{writer: writer, program: program, width: width}
}

// PrintUsage writes the synopsis, argument list and subcommand list of one
// command. The path locates the command in the tree for the synopsis line.
func (r *Renderer) PrintUsage(cmd *Command, path []string) {
	set := Compose(cmd)

	fmt.Fprintf(r.writer, "Usage: %s\n", r.synopsis(cmd, set, path))
	if cmd.Description != "" {
		fmt.Fprintf(r.writer, "\n%s\n", cmd.Description)
	}

	r.printArguments(set)
	r.printSubcommands(cmd)
}

// PrintDiagnostic writes the diagnostic's message followed by the usage of
// the command in scope at the failure, so the user always sees what would
// have been accepted. Help requests print usage alone.
func (r *Renderer) PrintDiagnostic(err error) {
	var d *Diagnostic
	if !errors.As(err, &d) {
		fmt.Fprintf(r.writer, "Error: %s\n", err)
		return
	}

	if d.Kind != HelpRequested {
		fmt.Fprintf(r.writer, "Error: %s\n\n", d.Error())
	}
	if d.Command != nil {
		r.PrintUsage(d.Command, d.CommandPath)
	}
}

func (r *Renderer) synopsis(cmd *Command, set *ArgumentSet, path []string) string {
	parts := []string{r.program}
	if p := Path(path); p != "" {
		parts = append(parts, p)
	}

	for _, d := range set.Descriptors() {
		if d.Hidden || d.Kind == Positional {
			continue
		}
		form := d.Names[0].String()
		if d.takesValue() {
			form += " <" + d.displayValueName() + ">"
		}
		if d.IsOptional() {
			form = "[" + form + "]"
		}
		parts = append(parts, form)
	}
	for _, d := range set.positionals() {
		if d.Hidden {
			continue
		}
		form := "<" + d.displayValueName() + ">"
		if d.Cardinality == Repeating {
			form += " ..."
		}
		if d.IsOptional() {
			form = "[" + form + "]"
		}
		parts = append(parts, form)
	}
	if len(cmd.Subcommands) > 0 {
		parts = append(parts, "<command>")
	}

	return strings.Join(parts, " ")
}

func (r *Renderer) printArguments(set *ArgumentSet) {
	type row struct {
		left, right string
	}
	var rows []row
	for _, d := range set.Descriptors() {
		if d.Hidden {
			continue
		}
		rows = append(rows, row{left: r.argumentForm(d), right: r.argumentHelp(d)})
	}
	if len(rows) == 0 {
		return
	}

	leftWidth := 0
	for _, rw := range rows {
		if len(rw.left) > leftWidth {
			leftWidth = len(rw.left)
		}
	}

	fmt.Fprintf(r.writer, "\nArguments:\n")
	for _, rw := range rows {
		r.printRow(rw.left, rw.right, leftWidth)
	}
}

func (r *Renderer) printSubcommands(cmd *Command) {
	names := cmd.SubcommandNames()
	if len(names) == 0 {
		return
	}

	leftWidth := 0
	for _, n := range names {
		if len(n) > leftWidth {
			leftWidth = len(n)
		}
	}

	fmt.Fprintf(r.writer, "\nCommands:\n")
	for _, sub := range cmd.Subcommands {
		if sub.Hidden {
			continue
		}
		r.printRow(sub.Name, sub.Description, leftWidth)
	}
}

func (r *Renderer) printRow(left, right string, leftWidth int) {
	indent := leftWidth + 6
	lines := wrap(right, r.width-indent)
	if len(lines) == 0 {
		fmt.Fprintf(r.writer, "  %s\n", left)
		return
	}
	fmt.Fprintf(r.writer, "  %-*s  %s\n", leftWidth, left, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(r.writer, "%s%s\n", strings.Repeat(" ", indent-2), line)
	}
}

func (r *Renderer) argumentForm(d *Descriptor) string {
	if d.Kind == Positional {
		form := "<" + d.displayValueName() + ">"
		if d.Cardinality == Repeating {
			form += " ..."
		}
		return form
	}

	// short spellings first, the conventional layout
	names := make([]string, 0, len(d.Names))
	for _, n := range d.Names {
		if n.Kind == ShortName {
			names = append(names, n.String())
		}
	}
	for _, n := range d.Names {
		if n.Kind != ShortName {
			names = append(names, n.String())
		}
	}
	form := strings.Join(names, ", ")
	if d.takesValue() {
		form += " <" + d.displayValueName() + ">"
	}
	return form
}

func (r *Renderer) argumentHelp(d *Descriptor) string {
	help := d.Description
	def := d.DefaultText
	if def == "" {
		def = d.DefaultValue
	}
	switch {
	case def != "" && help != "":
		help += fmt.Sprintf(" (default: %s)", def)
	case def != "":
		help = fmt.Sprintf("(default: %s)", def)
	}
	if d.Required {
		if help != "" {
			help += " "
		}
		help += "(required)"
	}
	return help
}

// wrap splits text into lines of at most width characters, breaking on
// spaces. Words longer than the width stand alone on their line.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 16 {
		width = 16
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	return lines
}
