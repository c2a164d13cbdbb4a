package rules

import (
	"path"
	"strings"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/woozymasta/pathrules"
)

// compiledRule pairs a rule with its single-pattern matcher
type compiledRule struct {
	rule    Rule
	matcher *pathrules.Matcher
}

// Registry classifies file names against an ordered rule table
type Registry struct {
	rules  []compiledRule
	logger zerolog.Logger
}

// NewRegistry validates and compiles rules, keeping their order
func NewRegistry(rules []Rule) (*Registry, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		pattern := strings.TrimSpace(rule.Pattern)
		if pattern == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "rule %d has empty pattern", i)
		}
		if strings.TrimSpace(rule.DataType) == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "rule %d (%s) has empty data type", i, pattern)
		}

		matcher, err := pathrules.NewMatcher([]pathrules.Rule{
			{Action: pathrules.ActionInclude, Pattern: pattern},
		}, pathrules.MatcherOptions{
			CaseInsensitive: true,
			DefaultAction:   pathrules.ActionExclude,
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "rule %d has invalid pattern %q", i, pattern)
		}

		compiled = append(compiled, compiledRule{
			rule:    Rule{Pattern: pattern, DataType: rule.DataType},
			matcher: matcher,
		})
	}

	return &Registry{
		rules:  compiled,
		logger: logging.GetLogger("rules.registry"),
	}, nil
}

// NewDefaultRegistry compiles the built-in table
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultRules())
	if err != nil {
		// The built-in table is static; failing here is a programming error
		panic(err)
	}
	return r
}

// Classify returns the data type of the first rule matching the base name
// of filename. ok is false when no rule matches.
func (r *Registry) Classify(filename string) (dataType string, ok bool) {
	m, ok := r.Match(filename)
	return m.DataType, ok
}

// Match is Classify with the matching pattern included
func (r *Registry) Match(filename string) (Match, bool) {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	for _, c := range r.rules {
		if c.matcher.Included(name, false) {
			r.logger.Trace().
				Str("file", name).
				Str("pattern", c.rule.Pattern).
				Str("type", c.rule.DataType).
				Msg("File matched rule")
			return Match{FileName: name, DataType: c.rule.DataType, Pattern: c.rule.Pattern}, true
		}
	}
	return Match{FileName: name}, false
}

// Rules returns a copy of the ordered rule table
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	for i, c := range r.rules {
		out[i] = c.rule
	}
	return out
}

// Len returns the number of rules
func (r *Registry) Len() int {
	return len(r.rules)
}

// IsVehicleContainer reports whether name is a packed .rpf bundle
func IsVehicleContainer(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".rpf")
}
