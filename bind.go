package declarg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	bindTagName = "declarg"
	// maxBindDepth caps group nesting when deriving a schema from a struct.
	maxBindDepth = 5
)

// NewParserFromStruct derives a complete parser from a tagged struct: every
// exported field becomes an argument bound to that field, nested structs
// become groups. The zero declaration effort path for hosts without
// subcommands.
func NewParserFromStruct[T any](target *T, configs ...ConfigureParserFunc) (*Parser, error) {
	root, err := CommandFromStruct("", target)
	if err != nil {
		return nil, err
	}
	return NewParser(root, configs...)
}

// CommandFromStruct derives one command's argument declarations from a
// tagged struct. Fields use the declarg tag, semicolon separated:
//
//	Output  string `declarg:"long:output;short:o;desc:write here;required:true"`
//	Verbose bool   `declarg:"desc:chatty logging"`
//	Files   []string `declarg:"kind:positional"`
//
// Untagged exported fields still participate with derived names; a field
// tagged "-" is skipped. Bool fields become flags, slice fields repeat, and
// the long name defaults to the kebab-cased field name.
func CommandFromStruct[T any](name string, target *T) (*Command, error) {
	if target == nil {
		return nil, fmt.Errorf(FmtErrorWithString, ErrBindNilPointer, "struct target")
	}
	v := reflect.ValueOf(target).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf(FmtErrorWithString, ErrNoValidTags, v.Type().String())
	}

	cmd := &Command{Name: name}
	bound, err := bindStruct(v, cmd, 0)
	if err != nil {
		return nil, err
	}
	if bound == 0 {
		return nil, fmt.Errorf(FmtErrorWithString, ErrNoValidTags, v.Type().String())
	}

	return cmd, nil
}

// argContainer is the part of Command and Group that field binding fills in.
type argContainer interface {
	addArgument(d *Descriptor)
	addGroup(g *Group)
}

func (c *Command) addArgument(d *Descriptor) { c.Arguments = append(c.Arguments, d) }
func (c *Command) addGroup(g *Group)         { c.Groups = append(c.Groups, g) }
func (g *Group) addArgument(d *Descriptor)   { g.Arguments = append(g.Arguments, d) }
func (g *Group) addGroup(sub *Group)         { g.Groups = append(g.Groups, sub) }

func bindStruct(v reflect.Value, into argContainer, depth int) (int, error) {
	if depth > maxBindDepth {
		return 0, fmt.Errorf("struct nesting exceeds %d levels", maxBindDepth)
	}

	t := v.Type()
	bound := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get(bindTagName)
		if tag == "-" {
			continue
		}

		if field.Type.Kind() == reflect.Struct && field.Type != reflect.TypeOf(time.Time{}) {
			group := &Group{Key: DefaultGroupKeyConverter(field.Name)}
			n, err := bindStruct(v.Field(i), group, depth+1)
			if err != nil {
				return 0, fmt.Errorf("field %s: %w", field.Name, err)
			}
			if n > 0 {
				into.addGroup(group)
				bound += n
			}
			continue
		}

		d, err := descriptorFromField(field, v.Field(i), tag)
		if err != nil {
			return 0, fmt.Errorf("field %s: %w", field.Name, err)
		}
		into.addArgument(d)
		bound++
	}

	return bound, nil
}

func descriptorFromField(field reflect.StructField, value reflect.Value, tag string) (*Descriptor, error) {
	configs := []ConfigureArgumentFunc{}
	kindSet := false
	hasLong := false
	positional := false

	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, _ := strings.Cut(part, ":")
		switch key {
		case "kind":
			kind, err := parseKind(val)
			if err != nil {
				return nil, err
			}
			kindSet = true
			if kind == Positional {
				positional = true
				configs = append(configs, AsPositional())
			} else if kind == Flag {
				configs = append(configs, AsFlag())
			}
		case "long":
			configs = append(configs, WithLong(val))
			hasLong = true
		case "short":
			r := []rune(val)
			if len(r) != 1 {
				return nil, fmt.Errorf("short name %q is not a single character", val)
			}
			configs = append(configs, WithShort(r[0]))
		case "key":
			configs = append(configs, WithKey(val))
		case "desc":
			configs = append(configs, WithDescription(val))
		case "default":
			configs = append(configs, WithDefaultValue(val))
		case "value":
			configs = append(configs, WithValueName(val))
		case "inverted":
			configs = append(configs, WithInverted(val))
		case "required":
			req, err := strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("required: %w", err)
			}
			configs = append(configs, SetRequired(req))
		case "hidden":
			hid, err := strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("hidden: %w", err)
			}
			configs = append(configs, SetHidden(hid))
		case "repeating":
			rep, err := strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("repeating: %w", err)
			}
			if rep {
				configs = append(configs, WithRepeating())
			}
		case "strategy":
			strategy, err := parseStrategy(val)
			if err != nil {
				return nil, err
			}
			configs = append(configs, WithStrategy(strategy))
		default:
			return nil, fmt.Errorf("unknown tag key %q", key)
		}
	}

	d := &Descriptor{}
	// Derived declarations run before the tag so explicit settings win.
	derived := []ConfigureArgumentFunc{}
	if !kindSet && field.Type.Kind() == reflect.Bool {
		derived = append(derived, AsFlag())
	}
	if field.Type.Kind() == reflect.Slice {
		derived = append(derived, WithRepeating())
	}
	if err := d.Set(derived...); err != nil {
		return nil, err
	}
	if !positional && !hasLong {
		configs = append([]ConfigureArgumentFunc{WithLong(DefaultFlagNameConverter(field.Name))}, configs...)
	}
	if err := d.Set(configs...); err != nil {
		return nil, err
	}
	if d.Key == "" {
		d.Key = DefaultGroupKeyConverter(field.Name)
	}
	if err := d.Set(WithBinding(value.Addr().Interface())); err != nil {
		return nil, err
	}

	return d, nil
}

func parseKind(s string) (ArgumentKind, error) {
	switch s {
	case "option":
		return Option, nil
	case "flag":
		return Flag, nil
	case "positional":
		return Positional, nil
	default:
		return Option, fmt.Errorf("unknown argument kind %q", s)
	}
}

func parseStrategy(s string) (Strategy, error) {
	switch s {
	case "default":
		return Default, nil
	case "scanning":
		return ScanningForValue, nil
	case "unconditional":
		return Unconditional, nil
	case "uptonext":
		return UpToNextOption, nil
	case "remaining":
		return AllRemainingInput, nil
	case "postterminator":
		return PostTerminator, nil
	case "unrecognized":
		return AllUnrecognized, nil
	default:
		return Default, fmt.Errorf("unknown strategy %q", s)
	}
}
