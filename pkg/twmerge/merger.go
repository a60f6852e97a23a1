package twmerge

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the classification memo of mergers built without
// WithCacheSize.
const DefaultCacheSize = 4096

// Observer receives merge statistics. Implementations must be safe for
// concurrent use because a Merger is shared across goroutines.
type Observer interface {
	ObserveClassify(hit bool)
	ObserveMerge(stats Stats)
}

// Stats summarises a single merge.
type Stats struct {
	Tokens     int
	Kept       int
	Overridden int
	Rejected   int
}

// Option configures a Merger.
type Option func(*Merger)

// WithCacheSize bounds the classification memo. A size of zero or less
// disables memoization.
func WithCacheSize(size int) Option {
	return func(m *Merger) {
		m.cacheSize = size
	}
}

// WithObserver attaches an observer notified on every merge and cache lookup.
func WithObserver(obs Observer) Option {
	return func(m *Merger) {
		m.observer = obs
	}
}

type classification struct {
	group Group
	ok    bool
}

// Merger resolves Tailwind class conflicts. The zero value is not usable;
// construct one with New. A Merger is safe for concurrent use.
type Merger struct {
	cacheSize int
	cache     *lru.Cache[string, classification]
	observer  Observer
}

// New creates a Merger with the supplied options.
func New(opts ...Option) *Merger {
	m := &Merger{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(m)
	}

	if m.cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		cache, err := lru.New[string, classification](m.cacheSize)
		if err == nil {
			m.cache = cache
		}
	}

	return m
}

var defaultMerger = New()

// Default returns the package-level merger used by Merge, MergeString,
// Classify and Explain.
func Default() *Merger {
	return defaultMerger
}

// Merge joins tokens into a class string, keeping only the last token of
// each utility group and dropping unsafe tokens.
func (m *Merger) Merge(tokens []string) string {
	return m.resolve(tokens, nil)
}

// MergeString splits classes on whitespace and merges the result.
func (m *Merger) MergeString(classes string) string {
	return m.resolve(strings.Fields(classes), nil)
}

// Classify reports the utility group of token. Invalid tokens are never
// grouped.
func (m *Merger) Classify(token string) (Group, bool) {
	token, reason := Validate(token)
	if reason != ReasonNone {
		return "", false
	}
	return m.classify(token)
}

// CacheLen returns the number of memoized classifications.
func (m *Merger) CacheLen() int {
	if m.cache == nil {
		return 0
	}
	return m.cache.Len()
}

// Purge drops every memoized classification.
func (m *Merger) Purge() {
	if m.cache != nil {
		m.cache.Purge()
	}
}

func (m *Merger) classify(token string) (Group, bool) {
	if m.cache == nil {
		return classify(token)
	}

	if c, ok := m.cache.Get(token); ok {
		m.observeClassify(true)
		return c.group, c.ok
	}

	group, ok := classify(token)
	m.cache.Add(token, classification{group: group, ok: ok})
	m.observeClassify(false)
	return group, ok
}

func (m *Merger) observeClassify(hit bool) {
	if m.observer != nil {
		m.observer.ObserveClassify(hit)
	}
}

// Merge merges tokens with the default merger.
func Merge(tokens []string) string {
	return defaultMerger.Merge(tokens)
}

// MergeString merges a whitespace separated class list with the default merger.
func MergeString(classes string) string {
	return defaultMerger.MergeString(classes)
}

// Classify classifies token with the default merger.
func Classify(token string) (Group, bool) {
	return defaultMerger.Classify(token)
}

// Explain traces a merge with the default merger.
func Explain(tokens []string) Trace {
	return defaultMerger.Explain(tokens)
}
