package zfmt

// Integer conversion engines. Each engine renders one fixed-width integer
// into decimal, hexadecimal, or octal text with width and zero-pad layout.
// The engines are append-style and never emit more than the worst-case
// character count for their type and radix, so callers can size staging
// buffers statically.
//
// The 16- and 32-bit decimal paths convert without dividing the full-width
// value: the value's nibbles are accumulated per decimal place, weighted by
// each nibble's positional contribution (the digits of the matching power of
// 16). The 64-bit paths dispatch to the 32-bit engines when the magnitude
// allows and otherwise fall back to repeated division into a digit stack.

// intSize selects how many bit groups the hex and octal engines examine.
type intSize uint8

const (
	size16 intSize = iota
	size32
	size64
)

func (s intSize) mask() uint64 {
	switch s {
	case size16:
		return 0xFFFF
	case size32:
		return 0xFFFFFFFF
	default:
		return ^uint64(0)
	}
}

// Maximum digit counts per type and radix. Widths clamp to these so a field
// can never exceed what the type can represent.
const (
	maxDigitsDec16  = 5
	maxDigitsDec32  = 10
	maxDigitsDec64  = 19
	maxDigitsUdec64 = 20
	maxDigitsHex16  = 4
	maxDigitsHex32  = 8
	maxDigitsHex64  = 16
	maxDigitsOct16  = 6
	maxDigitsOct32  = 11
	maxDigitsOct64  = 22
)

func hexChar(d byte, upper bool) byte {
	if d >= 0xA {
		if upper {
			return d - 0xA + 'A'
		}
		return d - 0xA + 'a'
	}
	return d + '0'
}

// appendPadded lays out an unsigned field: pad characters, then digits.
// width is the total character count and clamps to maxDigits.
func appendPadded(dst, digits []byte, width, maxDigits int, f flags) []byte {
	pad := width - len(digits)
	if m := maxDigits - len(digits); pad > m {
		pad = m
	}
	fill := byte(' ')
	if f.zeroPad {
		fill = '0'
	}
	for ; pad > 0; pad-- {
		dst = append(dst, fill)
	}
	return append(dst, digits...)
}

// appendSignedPadded lays out a signed field. The sign character occupies
// one width slot. Zero-padding places the sign before the fill; space
// padding places the fill before the sign.
func appendSignedPadded(dst, digits []byte, neg bool, width, maxDigits int, f flags) []byte {
	var sign byte
	switch {
	case neg:
		sign = '-'
	case f.sign == signAlways:
		sign = '+'
	case f.sign == signSpace:
		sign = ' '
	}
	pad := width - len(digits)
	if sign != 0 {
		pad--
	}
	if m := maxDigits - len(digits); pad > m {
		pad = m
	}
	if f.zeroPad {
		if sign != 0 {
			dst = append(dst, sign)
		}
		for ; pad > 0; pad-- {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	}
	for ; pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	if sign != 0 {
		dst = append(dst, sign)
	}
	return append(dst, digits...)
}

// dec16 converts n to decimal digits using the nibble-weighted accumulation
// (16^k contributes its decimal digits at each place). buf must hold at
// least maxDigitsDec16 bytes; the significant digits fill it from the end
// and the returned slice covers exactly those digits.
func dec16(buf []byte, n uint16) []byte {
	n0 := uint32(n & 0xF)
	n1 := uint32((n >> 4) & 0xF)
	n2 := uint32((n >> 8) & 0xF)
	n3 := uint32((n >> 12) & 0xF)

	var d [maxDigitsDec16]uint32
	a := 6*(n3+n2+n1) + n0
	d[0] = a % 10
	q := a / 10
	a = q + 9*n3 + 5*n2 + n1
	d[1] = a % 10
	q = a / 10
	a = q + 2*n2
	d[2] = a % 10
	q = a / 10
	a = q + 4*n3
	d[3] = a % 10
	d[4] = a / 10

	return emitDigits(buf, d[:])
}

// dec32 is the 32-bit nibble-weighted decimal conversion. buf must hold at
// least maxDigitsDec32 bytes.
func dec32(buf []byte, n uint32) []byte {
	n0 := n & 0xF
	n1 := (n >> 4) & 0xF
	n2 := (n >> 8) & 0xF
	n3 := (n >> 12) & 0xF
	n4 := (n >> 16) & 0xF
	n5 := (n >> 20) & 0xF
	n6 := (n >> 24) & 0xF
	n7 := (n >> 28) & 0xF

	var d [maxDigitsDec32]uint32
	a := 6*(n7+n6+n5+n4+n3+n2+n1) + n0
	d[0] = a % 10
	q := a / 10
	a = q + 5*n7 + n6 + 7*n5 + 3*n4 + 9*n3 + 5*n2 + n1
	d[1] = a % 10
	q = a / 10
	a = q + 4*n7 + 2*n6 + 5*n5 + 5*n4 + 2*n2
	d[2] = a % 10
	q = a / 10
	a = q + 5*n7 + 7*n6 + 8*n5 + 5*n4 + 4*n3
	d[3] = a % 10
	q = a / 10
	a = q + 3*n7 + 7*n6 + 4*n5 + 6*n4
	d[4] = a % 10
	q = a / 10
	a = q + 4*n7 + 7*n6
	d[5] = a % 10
	q = a / 10
	a = q + 8*n7 + 6*n6 + n5
	d[6] = a % 10
	q = a / 10
	a = q + 6*n7 + n6
	d[7] = a % 10
	q = a / 10
	a = q + 2*n7
	d[8] = a % 10
	d[9] = a / 10

	return emitDigits(buf, d[:])
}

// emitDigits writes place-value digits (d[0] is the ones place) into the
// tail of buf most-significant first, dropping leading zeros.
func emitDigits(buf []byte, d []uint32) []byte {
	top := 0
	for i := len(d) - 1; i > 0; i-- {
		if d[i] != 0 {
			top = i
			break
		}
	}
	out := buf[len(buf)-top-1:]
	for i := 0; i <= top; i++ {
		out[top-i] = byte(d[i]) + '0'
	}
	return out
}

// dec64 extracts digits by repeated division into the tail of buf.
// buf must hold at least maxDigitsUdec64 bytes.
func dec64(buf []byte, n uint64) []byte {
	i := len(buf)
	for {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
		if n == 0 {
			return buf[i:]
		}
	}
}

func appendUint16(dst []byte, n uint16, width int, f flags) []byte {
	var tmp [maxDigitsDec16]byte
	return appendPadded(dst, dec16(tmp[:], n), width, maxDigitsDec16, f)
}

func appendInt16(dst []byte, n int16, width int, f flags) []byte {
	m := uint16(n)
	if n < 0 {
		m = -m
	}
	var tmp [maxDigitsDec16]byte
	return appendSignedPadded(dst, dec16(tmp[:], m), n < 0, width, maxDigitsDec16, f)
}

func appendUint32(dst []byte, n uint32, width int, f flags) []byte {
	var tmp [maxDigitsDec32]byte
	return appendPadded(dst, dec32(tmp[:], n), width, maxDigitsDec32, f)
}

func appendInt32(dst []byte, n int32, width int, f flags) []byte {
	m := uint32(n)
	if n < 0 {
		m = -m
	}
	var tmp [maxDigitsDec32]byte
	return appendSignedPadded(dst, dec32(tmp[:], m), n < 0, width, maxDigitsDec32, f)
}

// appendUint64 range-dispatches to the 32-bit engine when the value fits.
func appendUint64(dst []byte, n uint64, width int, f flags) []byte {
	if n <= 0xFFFFFFFF {
		return appendUint32(dst, uint32(n), width, f)
	}
	var tmp [maxDigitsUdec64]byte
	return appendPadded(dst, dec64(tmp[:], n), width, maxDigitsUdec64, f)
}

// appendInt64 range-dispatches to the 32-bit engine when the value fits.
func appendInt64(dst []byte, n int64, width int, f flags) []byte {
	if n >= -0x80000000 && n <= 0x7FFFFFFF {
		return appendInt32(dst, int32(n), width, f)
	}
	m := uint64(n)
	if n < 0 {
		m = -m
	}
	var tmp [maxDigitsUdec64]byte
	return appendSignedPadded(dst, dec64(tmp[:], m), n < 0, width, maxDigitsDec64, f)
}

// appendHex extracts 4-bit groups within the size class, skipping leading
// zero groups unless padding forces them.
func appendHex(dst []byte, size intSize, n uint64, width int, f flags, upper bool) []byte {
	n &= size.mask()
	var tmp [maxDigitsHex64]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = hexChar(byte(n&0xF), upper)
		n >>= 4
		if n == 0 {
			break
		}
	}
	maxDigits := maxDigitsHex64
	switch size {
	case size16:
		maxDigits = maxDigitsHex16
	case size32:
		maxDigits = maxDigitsHex32
	}
	return appendPadded(dst, tmp[i:], width, maxDigits, f)
}

// appendOctal extracts 3-bit groups within the size class.
func appendOctal(dst []byte, size intSize, n uint64, width int, f flags) []byte {
	n &= size.mask()
	var tmp [maxDigitsOct64]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte(n&0x7) + '0'
		n >>= 3
		if n == 0 {
			break
		}
	}
	maxDigits := maxDigitsOct64
	switch size {
	case size16:
		maxDigits = maxDigitsOct16
	case size32:
		maxDigits = maxDigitsOct32
	}
	return appendPadded(dst, tmp[i:], width, maxDigits, f)
}
