package declarg

// WithAbbreviations enables matching unambiguous prefixes of long names
// (--verb for --verbose). Off by default; a prefix matching several distinct
// arguments is an ambiguous-abbreviation diagnostic, never a guess.
func WithAbbreviations(enabled bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.abbreviations = enabled
	}
}

// WithAutoHelp controls recognition of the help trigger names. Enabled by
// default; when off, --help resolves like any other name.
func WithAutoHelp(enabled bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.autoHelp = enabled
	}
}

// WithHelpArgumentNames replaces the default help triggers (--help, -h) for
// every command which does not override them itself.
func WithHelpArgumentNames(names ...ArgumentName) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.helpNames = names
	}
}
