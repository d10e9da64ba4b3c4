package zfmt

import (
	"math/bits"
	"strings"
)

// signMode selects how a non-negative value's sign position renders.
type signMode uint8

const (
	signAuto signMode = iota
	signAlways
	signSpace
)

// expMode selects fixed-point or scientific rendering and the marker case.
type expMode uint8

const (
	expNone expMode = iota
	expLower
	expUpper
)

// flags is the parsed flag set of one conversion escape. leftAlign and
// altForm are recorded but have no rendering effect.
type flags struct {
	leftAlign bool
	altForm   bool
	zeroPad   bool
	sign      signMode
	exp       expMode
}

// lengthClass selects which fixed-width engine an argument is read through.
type lengthClass uint8

const (
	lengthInt lengthClass = iota
	lengthLong
	lengthLongLong
)

// wordClass is the class the z and t modifiers map to: long-sized on 64-bit
// targets, int-sized on 32-bit targets.
const wordClass = lengthClass(bits.UintSize/32 - 1)

// precUnspecified marks an escape with no '.' at all; float conversions
// default it to 4. It is distinct from an explicit precision of 0.
const precUnspecified = -1

// maxSpecLen caps the sub-specifier capture: the full flag set, a width and
// a precision as large as a 32-bit literal, and a two-character length
// modifier. Escapes whose conversion letter lies beyond this window degrade
// to literal text.
const maxSpecLen = len("0-+ #") + len("-2147483648") + len(".") + len("-2147483648") + len("ll")

// convSpec is one parsed conversion escape, created per escape and discarded
// after dispatch.
type convSpec struct {
	flags        flags
	width        int // 0 means unspecified
	widthFromArg bool
	prec         int // precUnspecified means no '.' seen
	precFromArg  bool
	length       lengthClass
}

// parseSpec decodes the sub-specifier text between '%' and the conversion
// letter. Each stage consumes what it recognizes and leaves the rest to the
// next; scanning is indexed over the bounded capture and never looks past
// its end.
func parseSpec(sub string) convSpec {
	sp := convSpec{prec: precUnspecified}
	i := 0

flagScan:
	for i < len(sub) {
		switch sub[i] {
		case '0':
			sp.flags.zeroPad = true
		case '-':
			sp.flags.leftAlign = true
		case '+':
			sp.flags.sign = signAlways
		case ' ':
			if sp.flags.sign != signAlways {
				sp.flags.sign = signSpace
			}
		case '#':
			sp.flags.altForm = true
		default:
			break flagScan
		}
		i++
	}

	if i < len(sub) && sub[i] == '*' {
		sp.widthFromArg = true
		i++
	} else {
		sp.width, i = parseDecimal(sub, i)
	}

	if i < len(sub) && sub[i] == '.' {
		i++
		if i < len(sub) && sub[i] == '*' {
			sp.precFromArg = true
			i++
		} else if i < len(sub) && isDigit(sub[i]) {
			sp.prec, i = parseDecimal(sub, i)
		}
	}

	sp.length = parseLength(sub[i:])
	return sp
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseDecimal reads a decimal run starting at i, saturating rather than
// overflowing, and returns the value and the index past the run.
func parseDecimal(s string, i int) (int, int) {
	const saturate = 1<<31 - 1
	n := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		if n > saturate/10 {
			n = saturate
			continue
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, i
}

// parseLength detects the length modifier in the remaining sub-specifier
// text. Two-character tokens are checked before their one-character
// prefixes; checking l before ll would misclassify ll.
func parseLength(s string) lengthClass {
	switch {
	case strings.Contains(s, "ll"):
		return lengthLongLong
	case strings.ContainsAny(s, "lL"):
		return lengthLong
	case strings.Contains(s, "j"):
		return lengthLongLong
	case strings.Contains(s, "hh"):
		return lengthInt
	case strings.Contains(s, "h"):
		return lengthInt
	case strings.Contains(s, "z"):
		return wordClass
	case strings.Contains(s, "t"):
		return wordClass
	}
	return lengthInt
}
