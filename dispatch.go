package zfmt

import (
	"math"
	"reflect"
)

// %g/%G render fixed-point only while the magnitude stays inside this
// window; outside it scientific mode is forced.
const (
	gWindowMin = 0.0001
	gWindowMax = 999999.9
)

// defaultFloatPrec applies when a float conversion has no '.' at all.
const defaultFloatPrec = 4

// tokenMax bounds every staged token: the widest is a fully padded 64-bit
// octal field (22), and a float token peaks at a signed 10-digit integral
// part, point, 9 fractional digits, and a marked 4-character exponent.
const tokenMax = 32

// argCursor walks the caller's argument sequence strictly left to right.
type argCursor struct {
	args []any
	pos  int
}

func (c *argCursor) next() any {
	if c.pos >= len(c.args) {
		return nil
	}
	v := c.args[c.pos]
	c.pos++
	return v
}

// renderEscape resolves a parsed escape against the argument cursor and
// copies the resulting token into the output. Argument order is width,
// precision, value. Unsupported argument types degrade to zero or empty
// tokens; they never stop the scan.
func (o *output) renderEscape(sp convSpec, verb byte, cur *argCursor) {
	width := sp.width
	if sp.widthFromArg {
		if w := int(toInt64(cur.next())); w > 0 {
			width = w
		}
	}
	prec := sp.prec
	if sp.precFromArg {
		if p := int(toInt64(cur.next())); p >= 0 {
			prec = p
		} else {
			prec = precUnspecified
		}
	}

	var stage [tokenMax]byte
	tok := stage[:0]

	switch verb {
	case '%':
		tok = append(tok, '%')

	case 'd', 'i':
		if sp.length == lengthInt {
			tok = appendInt32(tok, int32(toInt64(cur.next())), width, sp.flags)
		} else {
			tok = appendInt64(tok, toInt64(cur.next()), width, sp.flags)
		}

	case 'u':
		if sp.length == lengthInt {
			tok = appendUint32(tok, uint32(toUint64(cur.next())), width, sp.flags)
		} else {
			tok = appendUint64(tok, toUint64(cur.next()), width, sp.flags)
		}

	case 'x', 'X':
		tok = appendHex(tok, sp.length.size(), toUint64(cur.next()), width, sp.flags, verb == 'X')

	case 'o':
		tok = appendOctal(tok, sp.length.size(), toUint64(cur.next()), width, sp.flags)

	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		val := toFloat64(cur.next())
		fl := sp.flags
		switch verb {
		case 'e', 'a':
			fl.exp = expLower
		case 'E', 'A':
			fl.exp = expUpper
		case 'g', 'G':
			if abs := math.Abs(val); abs < gWindowMin || abs > gWindowMax {
				if verb == 'g' {
					fl.exp = expLower
				} else {
					fl.exp = expUpper
				}
			}
		}
		if prec == precUnspecified {
			prec = defaultFloatPrec
		}
		if sp.length == lengthLong {
			tok = appendFloatWide(tok, val, width, prec, fl)
		} else {
			tok = appendFloatNarrow(tok, val, width, prec, fl)
		}

	case 'c':
		if b, ok := toChar(cur.next()); ok {
			tok = append(tok, b)
		}

	case 's':
		// The token is the caller's text; the scanner's bounded copy is the
		// only move it makes.
		switch s := cur.next().(type) {
		case string:
			o.writeString(s)
		case []byte:
			o.writeBytes(s)
		}
		return

	case 'p':
		tok = appendHex(tok, size64, pointerValue(cur.next()), width, sp.flags, false)

	case 'n':
		storeLength(cur.next(), o.length)
		return
	}

	o.writeBytes(tok)
}

// size maps a length class onto the hex/octal engines' size selector.
func (l lengthClass) size() intSize {
	if l == lengthInt {
		return size32
	}
	return size64
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case uintptr:
		return int64(n)
	}
	return 0
}

func toUint64(v any) uint64 {
	switch n := v.(type) {
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	}
	return 0
}

func toFloat64(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	}
	return 0
}

func toChar(v any) (byte, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return byte(toInt64(v)), true
	}
	return 0, false
}

// pointerValue reads an argument as an unsigned address. uintptr arguments
// pass through; pointer-shaped kinds fall back to reflection.
func pointerValue(v any) uint64 {
	if p, ok := v.(uintptr); ok {
		return uint64(p)
	}
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return uint64(rv.Pointer())
	}
	return 0
}

// storeLength writes the logical length produced so far through an
// integer-pointer argument.
func storeLength(v any, n int) {
	switch p := v.(type) {
	case *int:
		*p = n
	case *int32:
		*p = int32(n)
	case *int64:
		*p = int64(n)
	case *uint:
		*p = uint(n)
	case *uint32:
		*p = uint32(n)
	case *uint64:
		*p = uint64(n)
	}
}
