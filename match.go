package hardware

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// MatchSpec specifies how one detector attribute is matched. It is a tagged
// union of two forms:
//
//   - Literal: a finite set of literal values, matched by exact string
//     equality with no pattern interpretation
//   - Pattern: a regular expression, matched against the whole stringified
//     attribute value (anchors are implied)
//
// Numeric attribute values are coerced to strings before comparison, so the
// same spec form works uniformly for band names, wafer numbers and
// polarization tags. List-valued attributes match disjunctively: the spec
// matches if any element matches.
type MatchSpec struct {
	values  []string
	pattern string
	regex   bool
}

// Literal returns a spec matching the given values by exact equality.
// Regex metacharacters in the values carry no special meaning.
func Literal(values ...string) MatchSpec {
	return MatchSpec{values: slices.Clone(values)}
}

// Pattern returns a spec matching the given regular expression against the
// whole attribute value.
func Pattern(expr string) MatchSpec {
	return MatchSpec{pattern: expr, regex: true}
}

// SpecOf converts an untyped match value into a MatchSpec using the
// convention of the on-disk selection format: a slice becomes a literal
// set, any scalar becomes a pattern. Callers that need literal matching
// against a single metacharacter-bearing value should construct the spec
// with Literal instead.
func SpecOf(v any) (MatchSpec, error) {
	switch v.(type) {
	case []any, []string:
		values, err := cast.ToStringSliceE(v)
		if err != nil {
			return MatchSpec{}, fmt.Errorf("match values: %w", err)
		}
		return Literal(values...), nil
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return MatchSpec{}, fmt.Errorf("match value: %w", err)
		}
		return Pattern(s), nil
	}
}

// IsPattern reports whether the spec is the pattern form.
func (s MatchSpec) IsPattern() bool {
	return s.regex
}

// Values returns the literal set for the literal form, nil otherwise.
func (s MatchSpec) Values() []string {
	return slices.Clone(s.values)
}

// PatternExpr returns the expression for the pattern form, "" otherwise.
func (s MatchSpec) PatternExpr() string {
	return s.pattern
}

// String renders the spec the way it appears in selection reports.
func (s MatchSpec) String() string {
	if s.regex {
		return "/" + s.pattern + "/"
	}
	return "{" + strings.Join(s.values, ", ") + "}"
}

// compile resolves the spec into its evaluable form. Pattern compilation
// failures surface as *InvalidPatternError carrying the attribute name.
func (s MatchSpec) compile(attribute string) (*matcher, error) {
	m := &matcher{spec: s}
	if s.regex {
		re, err := regexp.Compile(`\A(?:` + s.pattern + `)\z`)
		if err != nil {
			return nil, &InvalidPatternError{Attribute: attribute, Pattern: s.pattern, Err: err}
		}
		m.re = re
	}
	return m, nil
}

// matcher is a compiled MatchSpec.
type matcher struct {
	spec MatchSpec
	re   *regexp.Regexp // set for the pattern form
}

// match evaluates the spec against one attribute value. Values are either
// scalars (string, numeric) or string lists; lists match if any element
// matches.
func (m *matcher) match(value any) bool {
	if list, ok := value.([]string); ok {
		for _, elem := range list {
			if m.matchScalar(elem) {
				return true
			}
		}
		return false
	}
	return m.matchScalar(cast.ToString(value))
}

func (m *matcher) matchScalar(s string) bool {
	if m.re != nil {
		return m.re.MatchString(s)
	}
	return slices.Contains(m.spec.values, s)
}
