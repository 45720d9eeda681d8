package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// ConvertString converts a single raw value into the variable data points to.
// Slice targets append one converted element per call; use Assign to convert
// a whole value list in one step.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = append(*t, value)
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%q is not a valid boolean: %w", value, err)
		}
		*t = val
	case *[]bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%q is not a valid boolean: %w", value, err)
		}
		*t = append(*t, val)
	case *int:
		num, ok := ParseNumeric(value)
		if !ok || !num.IsInt {
			return fmt.Errorf("%q is not a valid integer", value)
		}
		*t = int(num.Int)
	case *[]int:
		num, ok := ParseNumeric(value)
		if !ok || !num.IsInt {
			return fmt.Errorf("%q is not a valid integer", value)
		}
		*t = append(*t, int(num.Int))
	case *int32:
		val, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%q is not a valid 32-bit integer", value)
		}
		*t = int32(val)
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid 64-bit integer", value)
		}
		*t = val
	case *[]int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid 64-bit integer", value)
		}
		*t = append(*t, val)
	case *uint:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid unsigned integer", value)
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid unsigned integer", value)
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%q is not a valid number", value)
		}
		*t = float32(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid number", value)
		}
		*t = val
	case *[]float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%q is not a valid number", value)
		}
		*t = append(*t, val)
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%q is not a recognizable date or time", value)
		}
		*t = val
	case *[]time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%q is not a recognizable date or time", value)
		}
		*t = append(*t, val)
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%q is not a valid duration", value)
		}
		*t = val
	default:
		return fmt.Errorf("unsupported conversion target %T", data)
	}

	return nil
}

// Assign converts a list of raw values into the variable data points to.
// Slice targets receive every value in order; scalar targets receive the
// last value, matching last-occurrence-wins semantics for repeated options.
func Assign(values []string, data any) error {
	if len(values) == 0 {
		return nil
	}

	switch t := data.(type) {
	case *[]string:
		*t = (*t)[:0]
	case *[]bool:
		*t = (*t)[:0]
	case *[]int:
		*t = (*t)[:0]
	case *[]int64:
		*t = (*t)[:0]
	case *[]float64:
		*t = (*t)[:0]
	case *[]time.Time:
		*t = (*t)[:0]
	default:
		return ConvertString(values[len(values)-1], data)
	}

	for _, v := range values {
		if err := ConvertString(v, data); err != nil {
			return err
		}
	}

	return nil
}

// ConverterFor derives a string-to-value conversion from the type a binding
// target points to. The second result is false when the target type is not
// supported.
func ConverterFor(target any) (func(string) (any, error), bool) {
	switch target.(type) {
	case *string, *[]string:
		return func(s string) (any, error) { return s, nil }, true
	case *bool, *[]bool:
		return func(s string) (any, error) {
			var v bool
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *int, *[]int:
		return func(s string) (any, error) {
			var v int
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *int32:
		return func(s string) (any, error) {
			var v int32
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *int64, *[]int64:
		return func(s string) (any, error) {
			var v int64
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *uint:
		return func(s string) (any, error) {
			var v uint
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *uint64:
		return func(s string) (any, error) {
			var v uint64
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *float32:
		return func(s string) (any, error) {
			var v float32
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *float64, *[]float64:
		return func(s string) (any, error) {
			var v float64
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *time.Time, *[]time.Time:
		return func(s string) (any, error) {
			var v time.Time
			err := ConvertString(s, &v)
			return v, err
		}, true
	case *time.Duration:
		return func(s string) (any, error) {
			var v time.Duration
			err := ConvertString(s, &v)
			return v, err
		}, true
	}

	return nil, false
}
