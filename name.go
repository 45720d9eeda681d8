package declarg

import "unicode/utf8"

// NameKind distinguishes the syntactic form a name takes on the command line.
type NameKind int

const (
	// LongName is a multi-character name introduced by two dashes (--verbose).
	LongName NameKind = iota
	// ShortName is a single-character name introduced by one dash (-v).
	ShortName
	// LongSingleDashName is a multi-character name introduced by a single
	// dash (-verbose). Matched exactly, never abbreviated or clustered.
	LongSingleDashName
)

// ArgumentName is a name usable on the command line. The zero value is not a
// valid name. ArgumentName is comparable and safe to use as a map key.
type ArgumentName struct {
	Kind NameKind
	Text string
}

// Long returns a two-dash multi-character name (--text).
func Long(text string) ArgumentName {
	return ArgumentName{Kind: LongName, Text: text}
}

// Short returns a one-dash single-character name (-r).
func Short(r rune) ArgumentName {
	return ArgumentName{Kind: ShortName, Text: string(r)}
}

// LongSingleDash returns a one-dash multi-character name (-text).
func LongSingleDash(text string) ArgumentName {
	return ArgumentName{Kind: LongSingleDashName, Text: text}
}

// String renders the name as the user would type it.
func (n ArgumentName) String() string {
	switch n.Kind {
	case LongName:
		return "--" + n.Text
	default:
		return "-" + n.Text
	}
}

// IsValid reports whether the name satisfies its kind's shape: short names
// are exactly one character, long names are non-empty.
func (n ArgumentName) IsValid() bool {
	switch n.Kind {
	case ShortName:
		return utf8.RuneCountInString(n.Text) == 1
	default:
		return n.Text != ""
	}
}

func (n ArgumentName) shortRune() rune {
	r, _ := utf8.DecodeRuneInString(n.Text)
	return r
}
