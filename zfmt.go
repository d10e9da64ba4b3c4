package zfmt

import "strings"

// verbs are the recognized conversion letters. An escape is only consumed
// when one of these appears within the bounded search window after '%'.
const verbs = "duxXfFeEgGsiocpaAn%"

// output is the destination region plus the logical-length counter. The
// logical length always equals the sum of every literal run and token,
// whether or not the bytes fit.
type output struct {
	dst    []byte
	n      int // bytes written, never exceeds len(dst)
	length int // untruncated length
}

func (o *output) writeString(s string) {
	o.length += len(s)
	if o.n < len(o.dst) {
		o.n += copy(o.dst[o.n:], s)
	}
}

func (o *output) writeBytes(b []byte) {
	o.length += len(b)
	if o.n < len(o.dst) {
		o.n += copy(o.dst[o.n:], b)
	}
}

// terminate places the trailing NUL: after the last content byte when
// everything fit, over the final byte of the region when it did not.
func (o *output) terminate() {
	if o.n < len(o.dst) {
		o.dst[o.n] = 0
	} else if len(o.dst) > 0 {
		o.dst[len(o.dst)-1] = 0
	}
}

// FormatArgs renders format into dst and returns the logical length: the
// byte count the output would have had with unlimited capacity, excluding
// the trailing NUL. At most len(dst) bytes are written under any input, and
// any dst with room for at least one byte comes back NUL-terminated. A nil or empty dst
// measures without writing.
//
// args is consumed left to right; each escape takes its '*' width argument,
// then its '*' precision argument, then its value. Escapes with no
// recognized conversion letter degrade to literal text.
func FormatArgs(dst []byte, format string, args []any) int {
	o := output{dst: dst}
	cur := argCursor{args: args}
	src := format
	for {
		i := strings.IndexByte(src, '%')
		if i < 0 {
			break
		}
		o.writeString(src[:i])
		rest := src[i+1:]
		window := rest
		if len(window) > maxSpecLen+1 {
			window = window[:maxSpecLen+1]
		}
		j := strings.IndexAny(window, verbs)
		if j < 0 {
			// Malformed escape: drop the '%' and resume as literal text.
			src = rest
			continue
		}
		sp := parseSpec(rest[:j])
		verb := rest[j]
		src = rest[j+1:]
		o.renderEscape(sp, verb, &cur)
	}
	o.writeString(src)
	o.terminate()
	return o.length
}

// Format is the variadic form of [FormatArgs].
func Format(dst []byte, format string, args ...any) int {
	return FormatArgs(dst, format, args)
}

// Measure returns the length [Format] would report for the same call,
// without writing anything. Allocate Measure(...)+1 bytes to hold the full
// output and its terminator.
func Measure(format string, args ...any) int {
	return FormatArgs(nil, format, args)
}

// String renders to a newly allocated string. It is the one entry point
// that allocates: everything else in the package stages tokens in
// fixed-size stack buffers.
func String(format string, args ...any) string {
	n := FormatArgs(nil, format, args)
	buf := make([]byte, n+1)
	FormatArgs(buf, format, args)
	return string(buf[:n])
}
