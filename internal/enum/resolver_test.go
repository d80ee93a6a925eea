package enum

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Color int

const (
	ColorUnknown Color = iota
	ColorRed
	ColorGreen
	ColorDarkBlue
)

func (c Color) String() string {
	switch c {
	case ColorUnknown:
		return "Unknown"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorDarkBlue:
		return "Dark_Blue"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

var colorType = NewType("Color", Stringers(ColorUnknown, ColorRed, ColorGreen, ColorDarkBlue)...)

func newTestResolver(t *testing.T) (*Resolver, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	return NewResolver(NewDedupLog(), WithLogger(logger)), &buf
}

func TestResolveStrategies(t *testing.T) {
	red := "red"
	two := 2
	var nilStr *string

	tests := []struct {
		name  string
		input any
		want  Color
	}{
		{"nil", nil, ColorUnknown},
		{"nil pointer", nilStr, ColorUnknown},
		{"empty", "", ColorUnknown},
		{"None", "None", ColorUnknown},
		{"member value", ColorGreen, ColorGreen},
		{"int", 1, ColorRed},
		{"int pointer", &two, ColorGreen},
		{"uint8", uint8(3), ColorDarkBlue},
		{"integral float", 2.0, ColorGreen},
		{"fractional float truncates", 2.7, ColorGreen},
		{"negative fraction truncates to zero", -0.5, ColorUnknown},
		{"true", true, ColorRed},
		{"false", false, ColorUnknown},
		{"numeric string", "1", ColorRed},
		{"padded numeric string", " 3 ", ColorDarkBlue},
		{"exact name", "RED", ColorRed},
		{"lower name", "red", ColorRed},
		{"padded name", "  green\t", ColorGreen},
		{"string pointer", &red, ColorRed},
		{"underscored name", "dark_blue", ColorDarkBlue},
		{"spaced name", "dark blue", ColorDarkBlue},
		{"hyphenated name", "Dark-Blue", ColorDarkBlue},
		{"mixed separators", "dark - \t blue", ColorDarkBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, logs := newTestResolver(t)

			got := Resolve(r, colorType, tt.input, ColorUnknown)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, logs.String())
		})
	}
}

func TestResolveNullLikeUsesDefault(t *testing.T) {
	r, logs := newTestResolver(t)

	for _, raw := range []any{nil, "", "None"} {
		assert.Equal(t, ColorGreen, Resolve(r, colorType, raw, ColorGreen))
	}

	assert.Empty(t, logs.String())
	assert.Equal(t, 0, r.seen.Len())
}

func TestResolveFallbackLogsOnce(t *testing.T) {
	r, logs := newTestResolver(t)

	assert.Equal(t, ColorUnknown, Resolve(r, colorType, "bogus", ColorUnknown))
	assert.Equal(t, 1, strings.Count(logs.String(), "\n"))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "value=bogus")
	assert.Contains(t, logs.String(), "enum=Color")
	assert.Contains(t, logs.String(), "default=UNKNOWN")

	for range 5 {
		assert.Equal(t, ColorUnknown, Resolve(r, colorType, "bogus", ColorUnknown))
	}

	assert.Equal(t, 1, strings.Count(logs.String(), "\n"))

	// a different value is reported
	Resolve(r, colorType, 42, ColorUnknown)
	assert.Equal(t, 2, strings.Count(logs.String(), "\n"))
	assert.Contains(t, logs.String(), "value=42")

	// the same value for another enum is reported too
	other := NewType("Shade", Member[int]{Name: "light", Value: 1})
	Resolve(r, other, "bogus", 1)
	assert.Equal(t, 3, strings.Count(logs.String(), "\n"))
}

func TestResolveSharedDedupLog(t *testing.T) {
	seen := NewDedupLog()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	a := NewResolver(seen, WithLogger(logger))
	b := NewResolver(seen, WithLogger(logger))

	Resolve(a, colorType, "bogus", ColorUnknown)
	Resolve(b, colorType, "bogus", ColorUnknown)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.True(t, seen.Seen("Color", "bogus"))
}

func TestResolveConcurrentLogsOnce(t *testing.T) {
	r, logs := newTestResolver(t)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			Resolve(r, colorType, "bogus", ColorRed)
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, strings.Count(logs.String(), "\n"))
}

func TestResolveMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewMetrics(reg)
	require.NoError(t, err)

	r := NewResolver(nil, WithMetrics(m), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	Resolve(r, colorType, "bogus", ColorUnknown)
	Resolve(r, colorType, "bogus", ColorUnknown)
	Resolve(r, colorType, "other", ColorUnknown)
	Resolve(r, colorType, "red", ColorUnknown)

	assert.InDelta(t, 3, testutil.ToFloat64(m.fallbacks.WithLabelValues("Color")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.invalid.WithLabelValues("Color")), 0)

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering twice must fail")
}

func TestMatch(t *testing.T) {
	v, ok := Match(colorType, "green")
	assert.True(t, ok)
	assert.Equal(t, ColorGreen, v)

	_, ok = Match(colorType, "None")
	assert.False(t, ok)

	_, ok = Match(colorType, "bogus")
	assert.False(t, ok)
}

func TestResolveDefaultOutsideType(t *testing.T) {
	r, logs := newTestResolver(t)

	assert.Equal(t, Color(-1), Resolve(r, colorType, "bogus", Color(-1)))
	assert.Contains(t, logs.String(), "default=Color(-1)")
}

func ExampleResolve() {
	type Tecnologia int

	tecnologia := NewType("Tecnologia",
		Member[Tecnologia]{Name: "GSM", Value: 1},
		Member[Tecnologia]{Name: "UMTS", Value: 2},
		Member[Tecnologia]{Name: "LTE_ADVANCED", Value: 3},
	)

	r := NewResolver(NewDedupLog(), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	fmt.Println(Resolve(r, tecnologia, "2", 0))
	fmt.Println(Resolve(r, tecnologia, " gsm ", 0))
	fmt.Println(Resolve(r, tecnologia, "lte-advanced", 0))
	fmt.Println(Resolve(r, tecnologia, "5G", 0))
	// Output:
	// 2
	// 1
	// 3
	// 0
}

func ExampleNewMetrics() {
	reg := prometheus.NewRegistry()

	m, err := NewMetrics(reg)
	if err != nil {
		panic(err)
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r := NewResolver(NewDedupLog(), WithLogger(logger), WithMetrics(m))

	Resolve(r, colorType, "bogus", ColorUnknown)
	Resolve(r, colorType, "bogus", ColorUnknown)
	Resolve(r, colorType, "green", ColorUnknown)

	families, err := reg.Gather()
	if err != nil {
		panic(err)
	}

	for _, f := range families {
		fmt.Println(f.GetName(), f.GetMetric()[0].GetCounter().GetValue())
	}
	// Output:
	// xsdnorm_enum_fallbacks_total 2
	// xsdnorm_enum_invalid_values_total 1
}
