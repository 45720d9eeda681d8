package declarg

import (
	"strconv"

	"github.com/corvade/declarg/util"
)

// collected accumulates the occurrences of one descriptor during a single
// parse attempt. Nothing outward is mutated until the whole parse succeeds.
type collected struct {
	d     *Descriptor
	raws  []string
	vals  []any
	count int
	state bool
	seen  bool
}

// add converts and records one raw value.
func (c *collected) add(raw string) *Diagnostic {
	v, err := c.d.convert(raw)
	if err != nil {
		return &Diagnostic{Kind: InvalidValue, Descriptor: c.d, Input: raw, cause: err}
	}
	c.raws = append(c.raws, raw)
	c.vals = append(c.vals, v)
	c.seen = true
	return nil
}

// mark records a value-less flag occurrence. Inverted occurrences set false.
func (c *collected) mark(negated bool) {
	c.seen = true
	c.count++
	c.state = !negated
}

// markValue records a flag occurrence carrying an explicit boolean state.
func (c *collected) markValue(state bool) {
	c.seen = true
	c.count++
	c.state = state
}

// collection holds the per-descriptor accumulators of one command level.
type collection struct {
	byDescriptor map[*Descriptor]*collected
}

func newCollection(set *ArgumentSet) *collection {
	col := &collection{byDescriptor: map[*Descriptor]*collected{}}
	for _, d := range set.Descriptors() {
		col.byDescriptor[d] = &collected{d: d}
	}
	return col
}

func (c *collection) of(d *Descriptor) *collected {
	return c.byDescriptor[d]
}

// binding defers writing a bound pointer until the parse has fully
// succeeded: the engine either returns a complete ValueSet or touches
// nothing outward.
type binding struct {
	d     *Descriptor
	raws  []string
	count int
	state bool
}

// matcher consumes one token stream against a command tree. All state is
// per-invocation; two matchers never share anything mutable.
type matcher struct {
	parser   *Parser
	tokens   []Token
	claimed  []bool
	values   *ValueSet
	bindings []binding

	// defaults overrides descriptor defaults by scoped key for this
	// invocation only.
	defaults map[string]string

	// terminator is the token index of the first "--", -1 until seen. The
	// terminator is global to the stream: a default-subcommand child shares
	// its parent's window, so the split must survive the recursion even
	// though the parent claims the token.
	terminator int
}

// matchCommand runs the two-phase match of one command over the token
// window [lo, hi): named-argument resolution left to right with subcommand
// dispatch, then positional assignment, then required-argument and default
// settlement. The first unrecoverable diagnostic aborts the whole parse.
func (m *matcher) matchCommand(cmd *Command, path []string, lo, hi int) *Diagnostic {
	set := Compose(cmd)
	col := newCollection(set)

	dispatchIdx := -1
	var child *Command

	// Phase A: named-argument resolution.
	for i := lo; i < hi && dispatchIdx < 0; i++ {
		if m.claimed[i] {
			continue
		}
		switch m.tokens[i].Kind {
		case TokenTerminator:
			m.claimed[i] = true
			if m.terminator < 0 {
				m.terminator = i
			}
		case TokenValue:
			// The first unclaimed free value is tested against child names
			// before positional assignment runs. Values after the
			// terminator are literal and never dispatch.
			if len(cmd.Subcommands) > 0 && (m.terminator < 0 || i < m.terminator) {
				if sub := cmd.Find(m.tokens[i].Value); sub != nil {
					m.claimed[i] = true
					child = sub
					dispatchIdx = i
				}
			}
		case TokenNamed:
			if diag := m.resolveNamed(cmd, set, col, i, hi); diag != nil {
				// A command with a default subcommand shares its window with
				// that child, so names it does not recognize are left for
				// the child to resolve or reject.
				if diag.Kind == UnknownOption && !m.claimed[i] && cmd.defaultChild() != nil {
					continue
				}
				return diag.at(cmd, path)
			}
		}
	}

	if child == nil && len(cmd.Subcommands) > 0 {
		if def := cmd.defaultChild(); def != nil {
			// Implicit dispatch: the child sees the same remaining tokens,
			// no token is consumed for its name.
			child = def
		} else {
			// Never a silent fall-through to the parent's own positionals:
			// a command with children and no default requires a subcommand.
			return (&Diagnostic{Kind: MissingSubcommand, Available: cmd.SubcommandNames()}).at(cmd, path)
		}
	}

	if child != nil {
		childPath := append(append([]string{}, path...), child.Name)
		childLo := lo
		if dispatchIdx >= 0 {
			childLo = dispatchIdx + 1
		}
		if diag := m.matchCommand(child, childPath, childLo, hi); diag != nil {
			return diag
		}
	}

	// Phase B: positional assignment over the tokens in front of the
	// subcommand boundary.
	phaseBHi := hi
	if dispatchIdx >= 0 {
		phaseBHi = dispatchIdx
	}
	if diag := m.assignPositionals(set, col, lo, phaseBHi, m.terminator); diag != nil {
		return diag.at(cmd, path)
	}

	if diag := m.settle(set, col); diag != nil {
		return diag.at(cmd, path)
	}

	if child == nil {
		m.values.command = cmd
		m.values.commandPath = path
	}
	return nil
}

// resolveNamed identifies the descriptor behind one named occurrence and
// applies its parsing strategy.
func (m *matcher) resolveNamed(cmd *Command, set *ArgumentSet, col *collection, i, hi int) *Diagnostic {
	t := &m.tokens[i]

	// Multi-character single-dash tokens carry several competing readings
	// which only the schema can settle.
	if t.body != "" {
		return m.resolveSingleDash(cmd, set, col, i, hi)
	}

	switch t.Name.Kind {
	case LongName:
		if d, ok := set.Lookup(t.Name); ok {
			return m.applyNamed(set, col, d, false, i, hi, t.Attached)
		}
		if d, ok := set.LookupInverted(t.Name); ok {
			return m.applyNamed(set, col, d, true, i, hi, t.Attached)
		}
		if diag := m.helpRequested(cmd, t.Name); diag != nil {
			return diag
		}
		if m.parser.abbreviations {
			switch matches := set.matchLongPrefix(t.Name.Text); len(matches) {
			case 0:
			case 1:
				return m.applyNamed(set, col, matches[0].d, matches[0].inverted, i, hi, t.Attached)
			default:
				candidates := make([]string, 0, len(matches))
				for _, match := range matches {
					candidates = append(candidates, match.name.String())
				}
				return &Diagnostic{Kind: AmbiguousAbbreviation, Name: t.Name, Candidates: candidates}
			}
		}
	case ShortName:
		if d, negated, ok := set.lookupShort(t.Name.shortRune()); ok {
			return m.applyNamed(set, col, d, negated, i, hi, t.Attached)
		}
		if diag := m.helpRequested(cmd, t.Name); diag != nil {
			return diag
		}
		if t.maybeNumber {
			m.demoteToValue(i)
			return nil
		}
	case LongSingleDashName:
		if d, ok := set.Lookup(t.Name); ok {
			return m.applyNamed(set, col, d, false, i, hi, t.Attached)
		}
		if d, ok := set.LookupInverted(t.Name); ok {
			return m.applyNamed(set, col, d, true, i, hi, t.Attached)
		}
	}

	return m.unrecognized(set, col, i)
}

// resolveSingleDash settles a -abc style token: an exact single-dash long
// name wins; otherwise the leading character decides between the
// attached-value reading (leading short name is unary) and the cluster
// reading (leading short name is nullary); otherwise a numeric-looking
// token demotes to a plain value.
func (m *matcher) resolveSingleDash(cmd *Command, set *ArgumentSet, col *collection, i, hi int) *Diagnostic {
	t := &m.tokens[i]

	full := LongSingleDash(t.body)
	if d, ok := set.Lookup(full); ok {
		return m.applyNamed(set, col, d, false, i, hi, nil)
	}
	if d, ok := set.LookupInverted(full); ok {
		return m.applyNamed(set, col, d, true, i, hi, nil)
	}

	if d, negated, ok := set.lookupShort(t.Name.shortRune()); ok {
		if d.takesValue() && !negated {
			return m.applyNamed(set, col, d, false, i, hi, t.Attached)
		}
		if len(t.cluster) > 0 {
			return m.commitCluster(set, col, i, hi)
		}
		// A nullary leading flag with a non-clusterable remainder has no
		// valid reading.
		return &Diagnostic{Kind: UnknownOption, Name: full}
	}

	if t.maybeNumber {
		m.demoteToValue(i)
		return nil
	}

	return m.unrecognized(set, col, i)
}

// commitCluster expands a provisional short-flag cluster. Every character up
// to the first unary one must resolve to a nullary flag; a unary character
// takes the remainder of the token, or the next token, as its value; an
// unresolvable character rejects the cluster.
func (m *matcher) commitCluster(set *ArgumentSet, col *collection, i, hi int) *Diagnostic {
	t := &m.tokens[i]
	m.claimed[i] = true
	runes := t.cluster

	for j := 0; j < len(runes); j++ {
		d, negated, ok := set.lookupShort(runes[j])
		if !ok {
			return &Diagnostic{Kind: UnknownOption, Name: Short(runes[j])}
		}
		c := col.of(d)
		if !d.takesValue() {
			c.mark(negated)
			continue
		}
		if rest := string(runes[j+1:]); rest != "" {
			return c.add(rest)
		}
		return m.consumeValue(set, col, d, i, hi)
	}

	return nil
}

// applyNamed claims the occurrence token and consumes its value tokens per
// the descriptor's update rule and strategy.
func (m *matcher) applyNamed(set *ArgumentSet, col *collection, d *Descriptor, negated bool, i, hi int, attached *string) *Diagnostic {
	m.claimed[i] = true
	c := col.of(d)

	if !d.takesValue() {
		if attached != nil {
			// --color=false style explicit state; inverted names negate it.
			state, err := strconv.ParseBool(*attached)
			if err != nil {
				return &Diagnostic{Kind: InvalidValue, Descriptor: d, Input: *attached, cause: err}
			}
			c.markValue(state != negated)
			return nil
		}
		c.mark(negated)
		return nil
	}

	if attached != nil {
		return c.add(*attached)
	}
	return m.consumeValue(set, col, d, i, hi)
}

// consumeValue consumes the value token(s) of a unary occurrence at token
// index i, per the descriptor's parsing strategy.
func (m *matcher) consumeValue(set *ArgumentSet, col *collection, d *Descriptor, i, hi int) *Diagnostic {
	c := col.of(d)
	missing := func() *Diagnostic {
		return &Diagnostic{Kind: MissingValue, Descriptor: d}
	}

	switch d.Strategy {
	case Unconditional:
		j := m.nextUnclaimed(i+1, hi)
		if j < 0 {
			return missing()
		}
		m.claimed[j] = true
		return c.add(m.tokens[j].Raw)

	case ScanningForValue:
		for j := i + 1; j < hi; j++ {
			if m.claimed[j] {
				continue
			}
			m.demoteIfNumeric(set, j)
			t := &m.tokens[j]
			if t.Kind == TokenTerminator {
				break
			}
			if t.Kind == TokenNamed {
				if m.recognizes(set, t) {
					continue
				}
				break
			}
			m.claimed[j] = true
			return c.add(t.Value)
		}
		return missing()

	case UpToNextOption:
		took := false
		for j := i + 1; j < hi; j++ {
			if m.claimed[j] {
				continue
			}
			m.demoteIfNumeric(set, j)
			t := &m.tokens[j]
			if t.Kind != TokenValue {
				break
			}
			m.claimed[j] = true
			if diag := c.add(t.Value); diag != nil {
				return diag
			}
			took = true
		}
		if !took {
			return missing()
		}
		return nil

	case AllRemainingInput:
		// Everything to the end of input, verbatim. An empty remainder is a
		// legitimate empty list.
		c.seen = true
		for j := i + 1; j < hi; j++ {
			if m.claimed[j] {
				continue
			}
			m.claimed[j] = true
			if diag := c.add(m.tokens[j].Raw); diag != nil {
				return diag
			}
		}
		return nil

	default:
		// Default (and PostTerminator when name-driven): exactly the next
		// token, and only when it is a plain value. A named occurrence
		// immediately following is a missing value, never its value.
		j := m.nextUnclaimed(i+1, hi)
		if j < 0 {
			return missing()
		}
		m.demoteIfNumeric(set, j)
		if m.tokens[j].Kind != TokenValue {
			return missing()
		}
		m.claimed[j] = true
		return c.add(m.tokens[j].Value)
	}
}

// assignPositionals distributes the unclaimed plain values of the window to
// the positional descriptors in declaration order. Post-terminator values
// are reserved for post-terminator positionals when the set declares any.
func (m *matcher) assignPositionals(set *ArgumentSet, col *collection, lo, hi, terminatorIdx int) *Diagnostic {
	var pre, post []int
	for j := lo; j < hi; j++ {
		if m.claimed[j] || m.tokens[j].Kind != TokenValue {
			continue
		}
		if terminatorIdx >= 0 && j > terminatorIdx {
			post = append(post, j)
		} else {
			pre = append(pre, j)
		}
	}

	split := set.hasPostTerminator()
	pool := pre
	if !split {
		pool = append(pre, post...)
		post = nil
	}

	take := func(src *[]int, d *Descriptor) *Diagnostic {
		j := (*src)[0]
		*src = (*src)[1:]
		m.claimed[j] = true
		return col.of(d).add(m.tokens[j].Value)
	}

	for _, d := range set.positionals() {
		if d.Strategy == AllUnrecognized {
			continue
		}
		src := &pool
		if split && d.Strategy == PostTerminator {
			src = &post
		}
		switch d.Cardinality {
		case Single:
			if len(*src) == 0 {
				continue // absence is settled against Required later
			}
			if diag := take(src, d); diag != nil {
				return diag
			}
		case Repeating:
			for len(*src) > 0 {
				if diag := take(src, d); diag != nil {
					return diag
				}
			}
		}
	}

	leftovers := append(pool, post...)
	if len(leftovers) == 0 {
		return nil
	}
	if collector := set.collector(); collector != nil {
		c := col.of(collector)
		for _, j := range leftovers {
			m.claimed[j] = true
			if diag := c.add(m.tokens[j].Raw); diag != nil {
				return diag
			}
		}
		return nil
	}

	values := make([]string, 0, len(leftovers))
	for _, j := range leftovers {
		values = append(values, m.tokens[j].Raw)
	}
	return &Diagnostic{Kind: UnexpectedExtraValues, Values: values}
}

// settle checks required arguments, applies defaults and moves the
// collected values of one command level into the result set.
func (m *matcher) settle(set *ArgumentSet, col *collection) *Diagnostic {
	for _, d := range set.Descriptors() {
		c := col.of(d)

		if !c.seen {
			def, overridden := m.defaults[d.Key]
			if !overridden {
				def = d.DefaultValue
			}
			if def != "" {
				if diag := m.settleDefault(d, def); diag != nil {
					return diag
				}
				continue
			}
			if d.Required {
				return &Diagnostic{Kind: MissingRequiredArgument, Descriptor: d}
			}
			if d.Kind == Flag {
				m.values.set(d.Key, false, nil)
			}
			continue
		}

		switch {
		case d.Kind == Flag && d.Cardinality == Repeating:
			m.values.set(d.Key, c.count, c.raws)
			m.queueBinding(d, c)
		case d.Kind == Flag:
			m.values.set(d.Key, c.state, []string{strconv.FormatBool(c.state)})
			m.queueBinding(d, c)
		case d.Cardinality == Repeating:
			m.values.set(d.Key, c.vals, c.raws)
			m.queueBinding(d, c)
		default:
			if len(c.vals) == 0 {
				// seen with no values: an empty all-remaining capture
				continue
			}
			m.values.set(d.Key, c.vals[len(c.vals)-1], c.raws)
			m.queueBinding(d, c)
		}
	}

	return nil
}

func (m *matcher) settleDefault(d *Descriptor, def string) *Diagnostic {
	if d.Kind == Flag {
		state, err := strconv.ParseBool(def)
		if err != nil {
			return &Diagnostic{Kind: InvalidValue, Descriptor: d, Input: def, cause: err}
		}
		m.values.set(d.Key, state, []string{def})
		m.queueBinding(d, &collected{d: d, state: state, count: 1, raws: []string{def}})
		return nil
	}

	v, err := d.convert(def)
	if err != nil {
		return &Diagnostic{Kind: InvalidValue, Descriptor: d, Input: def, cause: err}
	}
	raws := []string{def}
	if d.Cardinality == Repeating {
		m.values.set(d.Key, []any{v}, raws)
	} else {
		m.values.set(d.Key, v, raws)
	}
	m.queueBinding(d, &collected{d: d, raws: raws})
	return nil
}

// queueBinding queues the bound-pointer write of one descriptor; writes
// happen only after the whole parse has succeeded.
func (m *matcher) queueBinding(d *Descriptor, c *collected) {
	if d.bindTo == nil {
		return
	}
	m.bindings = append(m.bindings, binding{d: d, raws: c.raws, count: c.count, state: c.state})
}

// applyBindings writes every queued bound pointer. Conversion has already
// succeeded during matching, so failures here indicate a custom converter
// disagreeing with the bind target and surface as invalid-value diagnostics.
func (m *matcher) applyBindings() *Diagnostic {
	for _, b := range m.bindings {
		d := b.d
		if d.Kind == Flag {
			switch target := d.bindTo.(type) {
			case *bool:
				*target = b.state
				continue
			case *int:
				*target = b.count
				continue
			}
		}
		if err := m.assignBinding(b); err != nil {
			raw := ""
			if len(b.raws) > 0 {
				raw = b.raws[len(b.raws)-1]
			}
			return &Diagnostic{Kind: InvalidValue, Descriptor: d, Input: raw, cause: err}
		}
	}
	return nil
}

func (m *matcher) assignBinding(b binding) error {
	return util.Assign(b.raws, b.d.bindTo)
}

// nextUnclaimed returns the first unclaimed token index in [from, hi), or -1.
func (m *matcher) nextUnclaimed(from, hi int) int {
	for j := from; j < hi; j++ {
		if !m.claimed[j] {
			return j
		}
	}
	return -1
}

// recognizes reports whether the schema in use answers to the named token
// under any of its readings. Used by the scanning strategy, which skips
// recognized occurrences but stops at unrecognized ones.
func (m *matcher) recognizes(set *ArgumentSet, t *Token) bool {
	if _, ok := set.Lookup(t.Name); ok {
		return true
	}
	if _, ok := set.LookupInverted(t.Name); ok {
		return true
	}
	if t.body != "" {
		if _, ok := set.Lookup(LongSingleDash(t.body)); ok {
			return true
		}
		if _, _, ok := set.lookupShort(t.Name.shortRune()); ok {
			return true
		}
	}
	return false
}

// unrecognized routes an unmatched named occurrence to the unrecognized
// collector when one is declared, and reports it otherwise.
func (m *matcher) unrecognized(set *ArgumentSet, col *collection, i int) *Diagnostic {
	t := &m.tokens[i]
	if collector := set.collector(); collector != nil {
		m.claimed[i] = true
		return col.of(collector).add(t.Raw)
	}

	name := t.Name
	if t.body != "" {
		name = LongSingleDash(t.body)
	}
	return &Diagnostic{Kind: UnknownOption, Name: name}
}

// demoteIfNumeric demotes a numeric-looking named token to a plain value
// when the schema in use has no claim to it, so --offset -3 works without
// any strategy gymnastics.
func (m *matcher) demoteIfNumeric(set *ArgumentSet, j int) {
	t := &m.tokens[j]
	if t.Kind == TokenNamed && t.maybeNumber && !m.recognizes(set, t) {
		m.demoteToValue(j)
	}
}

// demoteToValue reinterprets a dash-prefixed numeric token as a plain value
// once the schema has had no claim to it.
func (m *matcher) demoteToValue(i int) {
	t := &m.tokens[i]
	t.Kind = TokenValue
	t.Value = t.Raw
	t.Name = ArgumentName{}
	t.Attached = nil
	t.body = ""
	t.cluster = nil
}

// helpRequested reports a help-trigger occurrence for the command in scope.
func (m *matcher) helpRequested(cmd *Command, name ArgumentName) *Diagnostic {
	if !m.parser.autoHelp {
		return nil
	}
	for _, n := range cmd.helpNames(m.parser.helpNames) {
		if n == name {
			return &Diagnostic{Kind: HelpRequested, Name: name}
		}
	}
	return nil
}
