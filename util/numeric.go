package util

import "strconv"

// Numeric holds the result of parsing a string which may be an integer or a
// floating-point number.
type Numeric struct {
	Int     int64
	Float   float64
	IsInt   bool
	IsFloat bool
}

// ParseNumeric parses s as an integer first and as a float second. Used to
// decide whether a dash-prefixed argument ("-3", "-3.14") reads as a
// negative number rather than as a flag.
func ParseNumeric(s string) (Numeric, bool) {
	var num Numeric
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		num.Int = v
		num.IsInt = true
		return num, true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		num.Float = v
		num.IsFloat = true
		return num, true
	}

	return num, false
}
