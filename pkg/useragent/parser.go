package useragent

import "github.com/dmitrymomot/detectua/pkg/cache"

// Parser turns a navigator into a Detector.
type Parser interface {
	Parse(n Navigator) *Detector
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(n Navigator) *Detector

// Parse calls f(n).
func (f ParserFunc) Parse(n Navigator) *Detector { return f(n) }

// DefaultParser builds a fresh Detector for every call.
var DefaultParser Parser = ParserFunc(func(n Navigator) *Detector {
	return New(WithNavigator(n))
})

// CachedParser reuses Detectors for navigators it has already seen.
// Detectors are immutable, so a cached one answers exactly like a new one.
type CachedParser struct {
	lru       *cache.LRU[Navigator, *Detector]
	maxLength int
}

// CachedParserOption configures a CachedParser.
type CachedParserOption func(*CachedParser)

// WithMaxCachedLength sets the longest user agent or platform, in bytes,
// that is kept in the cache. Longer navigators are parsed on every call.
// The default is DefaultMaxLength; a non-positive n caches everything.
func WithMaxCachedLength(n int) CachedParserOption {
	return func(p *CachedParser) { p.maxLength = n }
}

// NewCachedParser returns a parser remembering up to size navigators.
// It panics if size is not positive.
func NewCachedParser(size int, opts ...CachedParserOption) *CachedParser {
	p := &CachedParser{
		lru:       cache.NewLRU[Navigator, *Detector](size),
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the cached Detector for n or builds and caches a new one.
func (p *CachedParser) Parse(n Navigator) *Detector {
	if n.Exceeds(p.maxLength) {
		return New(WithNavigator(n))
	}
	return p.lru.GetOrLoad(n, func() *Detector {
		return New(WithNavigator(n))
	})
}

// Stats reports cache usage.
func (p *CachedParser) Stats() cache.Stats {
	return p.lru.Stats()
}
