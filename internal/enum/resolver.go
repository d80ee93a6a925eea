package enum

import (
	"log/slog"
	"regexp"
	"strings"

	"xsdnorm/primitive"
)

var separatorRun = regexp.MustCompile(`[\s\-]+`)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger invalid values are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics counts fallbacks in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// Resolver resolves raw values against enumeration types.
type Resolver struct {
	seen    *DedupLog
	logger  *slog.Logger
	metrics *Metrics
}

// NewResolver creates a Resolver reporting invalid values once per entry of seen.
// A nil seen gives the resolver a DedupLog of its own.
func NewResolver(seen *DedupLog, opts ...Option) *Resolver {
	if seen == nil {
		seen = NewDedupLog()
	}

	r := &Resolver{
		seen:   seen,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the member of typ designated by raw, or def.
//
// Null-like input (nil, a nil pointer, "" or "None") yields def silently. Otherwise
// raw is matched by numeric value, then by exact upper-cased name, then by name
// with white space and hyphens collapsed into underscores. Input matching nothing
// yields def and is logged at warn level the first time the pair (type, value)
// is met. Resolve never panics on malformed input.
func Resolve[T Integer](r *Resolver, typ *Type[T], raw any, def T) T {
	if isNullLike(raw) {
		return def
	}

	if v, ok := match(typ, raw); ok {
		return v
	}

	text := primitive.Text(raw)
	first := r.seen.FirstSeen(typ.Name(), text)

	if first {
		r.logger.Warn("Invalid enum value, using default",
			slog.String("value", text),
			slog.String("enum", typ.Name()),
			slog.String("default", typ.NameOf(def)))
	}

	r.metrics.observe(typ.Name(), first)

	return def
}

// Match resolves raw without a default: it reports false when no strategy
// succeeds and never logs.
func Match[T Integer](typ *Type[T], raw any) (T, bool) {
	if isNullLike(raw) {
		var zero T
		return zero, false
	}

	return match(typ, raw)
}

func match[T Integer](typ *Type[T], raw any) (T, bool) {
	if n, ok := primitive.Int64(raw); ok {
		if v, ok := typ.ByValue(n); ok {
			return v, true
		}
	}

	text := primitive.Text(raw)

	if v, ok := typ.ByName(strings.ToUpper(strings.TrimSpace(text))); ok {
		return v, true
	}

	return typ.ByName(separatorRun.ReplaceAllString(strings.ToUpper(text), "_"))
}

func isNullLike(raw any) bool {
	if primitive.IsNull(raw) {
		return true
	}

	if primitive.Of(raw) != primitive.KindString {
		return false
	}

	switch primitive.Text(raw) {
	case "", "None":
		return true
	default:
		return false
	}
}
