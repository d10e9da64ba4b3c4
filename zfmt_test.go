package zfmt_test

import (
	"math"
	"testing"

	"github.com/bjaus/zfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// render formats into an ample buffer and checks the terminator invariant
// alongside every case.
func render(t *testing.T, format string, args ...any) string {
	t.Helper()
	buf := make([]byte, 128)
	n := zfmt.Format(buf, format, args...)
	require.Less(t, n, len(buf))
	require.Equal(t, byte(0), buf[n])
	return string(buf[:n])
}

func TestFormatIntegers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"zero":               {format: "%d", args: []any{0}, want: "0"},
		"minus one":          {format: "%d", args: []any{-1}, want: "-1"},
		"int32 max":          {format: "%d", args: []any{int32(math.MaxInt32)}, want: "2147483647"},
		"int32 min":          {format: "%d", args: []any{int32(math.MinInt32)}, want: "-2147483648"},
		"i alias":            {format: "%i", args: []any{-7}, want: "-7"},
		"int64 max":          {format: "%lld", args: []any{int64(math.MaxInt64)}, want: "9223372036854775807"},
		"int64 min":          {format: "%lld", args: []any{int64(math.MinInt64)}, want: "-9223372036854775808"},
		"uint32 max":         {format: "%u", args: []any{uint32(math.MaxUint32)}, want: "4294967295"},
		"uint64 max":         {format: "%llu", args: []any{uint64(math.MaxUint64)}, want: "18446744073709551615"},
		"unsigned wraps":     {format: "%u", args: []any{-1}, want: "4294967295"},
		"long class":         {format: "%ld", args: []any{int64(5000000000)}, want: "5000000000"},
		"zero pad":           {format: "%05d", args: []any{42}, want: "00042"},
		"zero pad negative":  {format: "%05d", args: []any{-42}, want: "-0042"},
		"space pad":          {format: "%5d", args: []any{42}, want: "   42"},
		"space pad negative": {format: "%5d", args: []any{-42}, want: "  -42"},
		"always sign":        {format: "%+d", args: []any{42}, want: "+42"},
		"space sign":         {format: "% d", args: []any{42}, want: " 42"},
		"plus wins":          {format: "% +d", args: []any{42}, want: "+42"},
		"negative sign":      {format: "%+d", args: []any{-42}, want: "-42"},
		"width clamps":       {format: "%30d", args: []any{1}, want: "         1"},
		"literal mix":        {format: "count=%d!", args: []any{9}, want: "count=9!"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHexOctal(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"hex lower":       {format: "%x", args: []any{255}, want: "ff"},
		"hex upper":       {format: "%X", args: []any{255}, want: "FF"},
		"hex zero":        {format: "%x", args: []any{0}, want: "0"},
		"hex zero pad":    {format: "%08x", args: []any{uint32(0xBEEF)}, want: "0000beef"},
		"hex space pad":   {format: "%8x", args: []any{uint32(0xBEEF)}, want: "    beef"},
		"hex int masks":   {format: "%x", args: []any{-1}, want: "ffffffff"},
		"hex long long":   {format: "%llx", args: []any{uint64(0xDEADBEEFCAFE)}, want: "deadbeefcafe"},
		"hex 64 all bits": {format: "%llx", args: []any{-1}, want: "ffffffffffffffff"},
		"octal":           {format: "%o", args: []any{8}, want: "10"},
		"octal zero":      {format: "%o", args: []any{0}, want: "0"},
		"octal zero pad":  {format: "%04o", args: []any{8}, want: "0010"},
		"octal 64":        {format: "%llo", args: []any{uint64(math.MaxUint64)}, want: "1777777777777777777777"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFloats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"fixed precision":       {format: "%.2f", args: []any{3.14159}, want: "3.14"},
		"sign survives zero":    {format: "%.2f", args: []any{-0.4}, want: "-0.40"},
		"default precision":     {format: "%f", args: []any{3.5}, want: "3.5000"},
		"upper fixed":           {format: "%F", args: []any{3.5}, want: "3.5000"},
		"float32 argument":      {format: "%.1f", args: []any{float32(2.5)}, want: "2.5"},
		"scientific":            {format: "%e", args: []any{1234.5}, want: "1.2345e+03"},
		"scientific upper":      {format: "%E", args: []any{1234.5}, want: "1.2345E+03"},
		"hex float alias":       {format: "%a", args: []any{1234.5}, want: "1.2345e+03"},
		"hex float alias upper": {format: "%A", args: []any{1234.5}, want: "1.2345E+03"},
		"negative exponent":     {format: "%e", args: []any{0.5}, want: "5.0000e-01"},
		"wide exponent field":   {format: "%le", args: []any{1234.5}, want: "1.2345e+003"},
		"zero scientific":       {format: "%e", args: []any{0.0}, want: "0.0000e+00"},
		"nan":                   {format: "%f", args: []any{math.NaN()}, want: "NAN"},
		"inf":                   {format: "%f", args: []any{math.Inf(1)}, want: "INF"},
		"negative inf":          {format: "%f", args: []any{math.Inf(-1)}, want: "-INF"},
		"nan ignores flags":     {format: "%+010.3f", args: []any{math.NaN()}, want: "NAN"},
		"g inside window":       {format: "%g", args: []any{0.5}, want: "0.5000"},
		"g window lower bound":  {format: "%g", args: []any{0.0001}, want: "0.0001"},
		"g above window":        {format: "%g", args: []any{5000000.0}, want: "5.0000e+06"},
		"G below window":        {format: "%G", args: []any{0.00005}, want: "5.0000E-05"},
		"explicit zero prec":    {format: "%.0f", args: []any{2.5}, want: "3"},
		"zero prec scientific":  {format: "%.0e", args: []any{2.5}, want: "3.e+00"},
		"precision clamps":      {format: "%.15f", args: []any{0.5}, want: "0.500000000"},
		"fixed overflow to sci": {format: "%.4f", args: []any{1e10}, want: "1.0000e+10"},
		"realistic reading":     {format: "temp=%.1f rh=%u%%", args: []any{23.46, uint32(40)}, want: "temp=23.5 rh=40%"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"string":             {format: "hello %s!", args: []any{"world"}, want: "hello world!"},
		"byte slice":         {format: "%s", args: []any{[]byte("raw")}, want: "raw"},
		"empty string":       {format: "(%s)", args: []any{""}, want: "()"},
		"string width inert": {format: "%10s", args: []any{"hi"}, want: "hi"},
		"char":               {format: "%c", args: []any{'A'}, want: "A"},
		"char from byte":     {format: "%c", args: []any{byte('z')}, want: "z"},
		"percent literal":    {format: "100%%", args: []any{}, want: "100%"},
		"percent keeps args": {format: "%%%d", args: []any{5}, want: "%5"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPointer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abcd", render(t, "%p", uintptr(0xABCD)))
	assert.Equal(t, "0", render(t, "%p", nil))

	v := 7
	got := render(t, "%p", &v)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "0", got)
}

func TestFormatStoresLength(t *testing.T) {
	t.Parallel()

	var n int
	buf := make([]byte, 32)
	total := zfmt.Format(buf, "abc%n def", &n)
	assert.Equal(t, "abc def", string(buf[:total]))
	assert.Equal(t, 3, n)

	// Logical length is reported even in measure-only mode.
	var m int
	got := zfmt.FormatArgs(nil, "abcd%n", []any{&m})
	assert.Equal(t, 4, got)
	assert.Equal(t, 4, m)

	var w int32
	zfmt.Format(buf, "xy%n", &w)
	assert.Equal(t, int32(2), w)
}

func TestStarWidthPrecision(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"star width":          {format: "%*d", args: []any{5, 42}, want: "   42"},
		"star precision":      {format: "%.*f", args: []any{2, 3.14159}, want: "3.14"},
		"star width and prec": {format: "%*.*f", args: []any{6, 2, 3.14159}, want: "     3.14"},
		"negative star width": {format: "%*d", args: []any{-5, 42}, want: "42"},
		"negative star prec":  {format: "%.*f", args: []any{-1, 3.5}, want: "3.5000"},
		"one arg per star":    {format: "(%*d)(%d)", args: []any{3, 7, 9}, want: "(  7)(9)"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMalformedEscapes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		want   string
	}{
		"trailing percent": {format: "50%", want: "50"},
		"unknown verb":     {format: "%q!", want: "q!"},
		"lone flag":        {format: "a%-", want: "a-"},
		"empty template":   {format: "", want: ""},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLengthModifiers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"h":  {format: "%hd", args: []any{int16(-5)}, want: "-5"},
		"hh": {format: "%hhd", args: []any{int8(-5)}, want: "-5"},
		"z":  {format: "%zd", args: []any{42}, want: "42"},
		"t":  {format: "%td", args: []any{-42}, want: "-42"},
		"j":  {format: "%jd", args: []any{int64(1000000000000000000)}, want: "1000000000000000000"},
		"L":  {format: "%Ld", args: []any{int64(5000000000)}, want: "5000000000"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := render(t, tt.format, tt.args...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingArguments(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0 ", render(t, "%d %s"))
	assert.Equal(t, "0.0000", render(t, "%f"))
}

func TestTruncation(t *testing.T) {
	t.Parallel()

	t.Run("capacity zero measures", func(t *testing.T) {
		t.Parallel()
		n := zfmt.Format(nil, "hello %s", "world")
		assert.Equal(t, 11, n)
	})

	t.Run("short buffer", func(t *testing.T) {
		t.Parallel()
		buf := make([]byte, 5)
		n := zfmt.Format(buf, "hello world")
		assert.Equal(t, 11, n)
		assert.Equal(t, "hell", string(buf[:4]))
		assert.Equal(t, byte(0), buf[4])
	})

	t.Run("exact content size still terminates", func(t *testing.T) {
		t.Parallel()
		buf := make([]byte, 11)
		n := zfmt.Format(buf, "hello world")
		assert.Equal(t, 11, n)
		assert.Equal(t, "hello worl", string(buf[:10]))
		assert.Equal(t, byte(0), buf[10])
	})

	t.Run("roomy buffer", func(t *testing.T) {
		t.Parallel()
		buf := make([]byte, 12)
		n := zfmt.Format(buf, "hello world")
		assert.Equal(t, 11, n)
		assert.Equal(t, "hello world", string(buf[:11]))
		assert.Equal(t, byte(0), buf[11])
	})

	t.Run("every capacity preserves the prefix", func(t *testing.T) {
		t.Parallel()
		const format = "v=%05d %s %.2f"
		args := []any{-42, "ok", 1.25}
		full := zfmt.FormatArgs(nil, format, args)
		ref := make([]byte, full+1)
		require.Equal(t, full, zfmt.FormatArgs(ref, format, args))
		for k := 1; k <= full; k++ {
			buf := make([]byte, k)
			assert.Equal(t, full, zfmt.FormatArgs(buf, format, args))
			assert.Equal(t, string(ref[:k-1]), string(buf[:k-1]), "capacity %d", k)
			assert.Equal(t, byte(0), buf[k-1], "capacity %d", k)
		}
	})
}

func TestMeasureAndString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 6, zfmt.Measure("%s %d", "ab", 100))
	assert.Equal(t, "x=7", zfmt.String("x=%d", 7))
	assert.Equal(t, "", zfmt.String(""))
	assert.Equal(t, "pi~3.14", zfmt.String("pi~%.2f", 3.14159))
}
