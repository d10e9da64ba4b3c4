package zfmt

import "math"

// Float conversion engine. A value renders as fixed-point or scientific
// decimal text by splitting it into an integral part and a scaled fractional
// part, each handed to the integer engines. Precision is the fractional
// digit count, 0 through 9.
//
// The fractional remainder accumulates into a fixed-width integer, so very
// high precision or very small magnitudes lose trailing accuracy.

// maxFixed is the largest magnitude the integral-part converter accepts;
// beyond it fixed-point rendering is forced into scientific mode.
const maxFixed = float64(1<<31 - 2)

var pow10 = [10]float64{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

var roundBias = [10]float64{
	0.5e-0, 0.5e-1, 0.5e-2, 0.5e-3, 0.5e-4,
	0.5e-5, 0.5e-6, 0.5e-7, 0.5e-8, 0.5e-9,
}

// appendFloatNarrow renders with the narrower representation's two-digit
// exponent field.
func appendFloatNarrow(dst []byte, v float64, width, prec int, f flags) []byte {
	return appendFloat(dst, v, width, prec, f, 2)
}

// appendFloatWide renders with the wider representation's three-digit
// exponent field.
func appendFloatWide(dst []byte, v float64, width, prec int, f flags) []byte {
	return appendFloat(dst, v, width, prec, f, 3)
}

func appendFloat(dst []byte, v float64, width, prec int, f flags, expDigits int) []byte {
	// Non-finite values short-circuit, independent of flags and width.
	if math.IsNaN(v) {
		return append(dst, "NAN"...)
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			return append(dst, "-INF"...)
		}
		return append(dst, "INF"...)
	}

	// A magnitude the integral converter cannot hold forces scientific mode.
	if f.exp == expNone && math.Abs(v) > maxFixed {
		f.exp = expLower
	}

	exponent := 0
	if f.exp != expNone && math.Abs(v) > 0 {
		exponent = int(math.Log10(math.Abs(v)))
		v *= math.Pow(10, float64(-exponent))
		// Floating rounding at decade boundaries can leave the rescaled
		// integral part at 0; shift up one decade to compensate.
		if int32(v) == 0 {
			v *= 10
			exponent--
		}
	}

	if prec > 9 {
		prec = 9
	}
	rounded := v + roundBias[prec]
	if v < 0 {
		rounded = v - roundBias[prec]
	}
	whole := int32(rounded)
	if f.exp != expNone && (whole >= 10 || whole <= -10) {
		// Rounding carried into a new decade; renormalize.
		rounded *= 0.1
		exponent++
		whole = int32(rounded)
	}

	// A zero integral part carries no sign of its own.
	if whole == 0 && math.Signbit(v) {
		dst = append(dst, '-')
		f.sign = signAuto
	}
	if whole > math.MaxInt16 || whole < math.MinInt16 || width > 4 {
		dst = appendInt32(dst, whole, width, f)
	} else {
		dst = appendInt16(dst, int16(whole), width, f)
	}

	if prec > 0 || f.exp != expNone {
		dst = append(dst, '.')
	}
	if prec > 0 {
		fraction := math.Abs(pow10[prec] * (rounded - float64(whole)))
		ff := flags{zeroPad: true}
		if fraction > math.MaxUint16 || prec > 4 {
			dst = appendUint32(dst, uint32(fraction), prec, ff)
		} else {
			dst = appendUint16(dst, uint16(fraction), prec, ff)
		}
	}

	if f.exp != expNone {
		marker := byte('e')
		if f.exp == expUpper {
			marker = 'E'
		}
		dst = append(dst, marker)
		ef := flags{sign: signAlways, zeroPad: true}
		dst = appendInt32(dst, int32(exponent), expDigits+1, ef)
	}
	return dst
}
