// Package zfmt renders printf-style templates into caller-supplied buffers
// of fixed capacity.
//
// The central entry points are [Format] and [FormatArgs], which take a
// destination byte slice, a template, and arguments, and return the logical
// length: the length the output would have had with unlimited capacity.
// Writes never pass the end of the destination, and any destination with
// room for at least one byte comes back NUL-terminated: after the content
// when everything fit, over the final byte when it did not. The renderer
// holds no state between calls, performs no I/O, and allocates nothing, so
// concurrent calls with separate destinations are safe and it can run in
// restricted execution contexts.
//
// # Measuring
//
// A nil or empty destination is measure-only mode: nothing is written and
// the logical length still comes back exact.
//
//	n := zfmt.Measure("%s=%d", key, val)
//	buf := make([]byte, n+1)
//	zfmt.Format(buf, "%s=%d", key, val)
//
// [String] wraps that pattern into a single allocating convenience call.
//
// # Template Language
//
// Escapes follow the printf shape %[flags][width][.precision][length]verb.
//
//   - flags: 0 (zero-pad), + (always sign), space (space-or-sign; + wins),
//     and the parsed-but-inert - and #
//   - width: decimal literal, or * to take the next argument as a signed
//     integer width; it is the total field count including any sign, and
//     clamps to the type's maximum digit count
//   - precision: . followed by a decimal literal or *; for floats it is the
//     fractional digit count (0 through 9, clamped), defaulting to 4 when no
//     '.' appears; an explicit .0 is different, and still emits the decimal
//     point in scientific form
//   - length: hh, h (int-sized), l, L (long-sized), ll, j (long-long-sized),
//     z, t (platform word size)
//   - verbs: d, i, u, x, X, o, f, F, e, E, g, G, a, A, c, s, p, n, %
//
// %g and %G render fixed-point inside [0.0001, 999999.9] and scientific
// outside it. %p renders any pointer-shaped argument as 64-bit hex. %n
// stores the logical length produced so far through a *int-family argument
// and emits nothing. %% emits a literal % and consumes no argument.
//
// Escapes with no recognized conversion letter degrade to literal text;
// there is no error channel anywhere in the package.
//
// # Caller Contract
//
// Arguments must match their escapes. A mismatched argument type is not
// detectable at this layer; it renders as a zero or empty token rather than
// panicking, and the result is unspecified beyond that.
//
// # Deviations
//
// Inherited limitations, kept on purpose:
//
//   - %a and %A render as %e and %E, not as hexadecimal floats
//   - the - (left justify) and # (alternate form) flags have no effect
//   - %g/%G output is not minimal and may keep trailing zeros
//   - %f switches to scientific form when the magnitude exceeds what the
//     integral-part converter can hold
//   - float output is not shortest-round-trip; fractional accuracy is
//     bounded by the fixed-width fraction accumulator
package zfmt
