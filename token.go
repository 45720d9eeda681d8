package declarg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/corvade/declarg/parse"
	"github.com/corvade/declarg/util"
)

// TokenKind classifies one element of the token stream.
type TokenKind int

const (
	// TokenValue is a plain value with no name interpretation.
	TokenValue TokenKind = iota
	// TokenNamed is an occurrence of a named argument, possibly carrying an
	// attached value (--name=value, -xvalue).
	TokenNamed
	// TokenTerminator is the bare "--" marker. Everything after it is
	// tokenized as a literal value regardless of shape.
	TokenTerminator
)

// Token is one element of the tokenizer's output. Tokens keep their original
// argument index so diagnostics and look-ahead strategies can reference the
// exact input position.
type Token struct {
	Kind     TokenKind
	Name     ArgumentName
	Attached *string
	Value    string
	Raw      string
	Index    int

	// body holds the dash-stripped text of a multi-character single-dash
	// token ("abc" for "-abc"). Such tokens stay ambiguous between a
	// single-dash long name, a short name with attached value and a short
	// cluster until the matching engine resolves them against the schema.
	body string
	// cluster holds the provisional short-flag expansion of a -xyz token.
	// The tokenizer cannot commit to the cluster reading on syntax alone;
	// the matching engine decides against the schema in use.
	cluster []rune
	// maybeNumber marks dash-prefixed tokens which read as negative numbers
	// (-3, -3.14). The engine demotes them to plain values when the schema
	// declares no short name matching the leading character.
	maybeNumber bool
}

// Tokenize splits a raw argument vector into a token stream. Tokenization
// never fails: every semantic judgement is deferred to the matching engine.
func Tokenize(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	st := parse.NewState(args)
	terminated := false

	for st.Advance() {
		arg := st.CurrentArg()
		idx := st.Pos()
		if terminated {
			tokens = append(tokens, valueToken(arg, idx))
			continue
		}
		switch {
		case arg == "--":
			terminated = true
			tokens = append(tokens, Token{Kind: TokenTerminator, Raw: arg, Index: idx})
		case strings.HasPrefix(arg, "--"):
			tokens = append(tokens, doubleDashToken(arg, idx))
		case len(arg) > 1 && arg[0] == '-':
			tokens = append(tokens, singleDashToken(arg, idx))
		default:
			tokens = append(tokens, valueToken(arg, idx))
		}
	}

	return tokens
}

func valueToken(arg string, idx int) Token {
	return Token{Kind: TokenValue, Value: arg, Raw: arg, Index: idx}
}

// splitAttached separates "name=value" into name and attached value. The
// attached pointer distinguishes "--name=" (explicit empty value) from
// "--name" (no value).
func splitAttached(body string) (string, *string) {
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		attached := body[eq+1:]
		return body[:eq], &attached
	}
	return body, nil
}

func doubleDashToken(arg string, idx int) Token {
	name, attached := splitAttached(arg[2:])
	if name == "" {
		return valueToken(arg, idx)
	}
	return Token{Kind: TokenNamed, Name: Long(name), Attached: attached, Raw: arg, Index: idx}
}

func singleDashToken(arg string, idx int) Token {
	body, attached := splitAttached(arg[1:])
	if body == "" {
		return valueToken(arg, idx)
	}

	if attached != nil {
		if utf8.RuneCountInString(body) == 1 {
			return Token{Kind: TokenNamed, Name: Short(firstRune(body)), Attached: attached, Raw: arg, Index: idx}
		}
		// "-name=value" reads as an exact single-dash long name
		return Token{Kind: TokenNamed, Name: LongSingleDash(body), Attached: attached, Raw: arg, Index: idx}
	}

	_, numeric := util.ParseNumeric(body)
	if utf8.RuneCountInString(body) == 1 {
		return Token{
			Kind:        TokenNamed,
			Name:        Short(firstRune(body)),
			Raw:         arg,
			Index:       idx,
			maybeNumber: numeric,
		}
	}

	first := firstRune(body)
	rest := body[utf8.RuneLen(first):]
	tok := Token{
		Kind:        TokenNamed,
		Name:        Short(first),
		Attached:    &rest,
		Raw:         arg,
		Index:       idx,
		body:        body,
		maybeNumber: numeric,
	}
	if allLetters(body) {
		tok.cluster = []rune(body)
	}

	return tok
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
