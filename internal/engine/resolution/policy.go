// Package resolution decides which library imports are redirected for a variant.
package resolution

import (
	"regexp"

	"go.trai.ch/bundle/internal/core/domain"
)

var (
	// nodeOnlyModule matches Node capabilities a browser does not have.
	nodeOnlyModule = regexp.MustCompile(`^(fs|path|chokidar)$`)

	// compilerModule matches the template compiler stages.
	compilerModule = regexp.MustCompile(`(^|/)(nodes|lexer|parser|precompile|transformer|compiler)(\.js)?$`)

	// loaderModule matches the runtime loader selection module imported by path.
	loaderModule = regexp.MustCompile(`^(.*/)loaders(\.js)?$`)
)

// Rule redirects a requested module path.
type Rule struct {
	// Name identifies the rule in tests and logs.
	Name string
	// Match reports whether the rule applies to path under v.
	Match func(path string, v domain.Variant) bool
	// Target returns the replacement path. It is only called after Match.
	Target func(path string, v domain.Variant) string
}

// Policy is an ordered rule table. The first matching rule wins.
type Policy struct {
	rules []Rule
}

// New returns the policy used for browser bundles.
func New() *Policy {
	return NewPolicy(DefaultRules()...)
}

// NewPolicy returns a policy evaluating rules in the given order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: append([]Rule(nil), rules...)}
}

// DefaultRules returns the browser bundle rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "node-only",
			Match: func(path string, _ domain.Variant) bool {
				return nodeOnlyModule.MatchString(path)
			},
			Target: stub,
		},
		{
			Name: "slim-compiler",
			Match: func(path string, v domain.Variant) bool {
				return v.Slim() && compilerModule.MatchString(path)
			},
			Target: stub,
		},
		{
			Name: "loaders",
			Match: func(path string, _ domain.Variant) bool {
				return loaderModule.MatchString(path)
			},
			Target: func(path string, v domain.Variant) string {
				m := loaderModule.FindStringSubmatch(path)
				module := domain.WebLoaderModule
				if v.Slim() {
					module = domain.PrecompiledLoaderModule
				}
				return m[1] + module + m[2]
			},
		},
	}
}

func stub(string, domain.Variant) string {
	return domain.EmptyModule
}

// Rules returns a copy of the rule table.
func (p *Policy) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Resolve returns the replacement for path under v.
// It returns path and false when no rule matches.
func (p *Policy) Resolve(path string, v domain.Variant) (string, bool) {
	for _, r := range p.rules {
		if r.Match(path, v) {
			return r.Target(path, v), true
		}
	}
	return path, false
}

// For binds the policy to v.
func (p *Policy) For(v domain.Variant) func(path string) (string, bool) {
	return func(path string) (string, bool) {
		return p.Resolve(path, v)
	}
}
