// Package params validates tool arguments against their declared contracts.
// Arguments arrive as the decoded JSON map of an MCP tools/call request, so
// numbers are float64 and every accessor has to coerce defensively. All
// validation happens before any network call; a failure names the offending
// field and the expected format.
package params

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/enomix-labs/eer-mcp/pkg/apperror"
)

// Args is the raw argument map of a tool invocation.
type Args map[string]any

// String returns the named argument as a string. Absent or non-string
// values degrade to "".
func (a Args) String(name string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return ""
}

// StringOr returns the named string argument or def when absent or empty.
func (a Args) StringOr(name, def string) string {
	if v, ok := a[name].(string); ok && v != "" {
		return v
	}
	return def
}

// Bool returns the named boolean argument or def when absent.
func (a Args) Bool(name string, def bool) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return def
}

// Required returns the named string argument, failing validation when it is
// absent or empty.
func (a Args) Required(name string) (string, error) {
	v, ok := a[name].(string)
	if !ok || v == "" {
		return "", apperror.NewValidation(name, "a non-empty string")
	}
	return v, nil
}

// RequiredNonBlank behaves like Required but also rejects whitespace-only
// values, returning the trimmed string.
func (a Args) RequiredNonBlank(name string) (string, error) {
	v, err := a.Required(name)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", apperror.NewValidation(name, "a non-blank string")
	}
	return trimmed, nil
}

// Pattern returns the named string argument, failing validation unless it
// matches re. The hint describes the expected format in the error.
func (a Args) Pattern(name string, re *regexp.Regexp, hint string) (string, error) {
	v, ok := a[name].(string)
	if !ok || !re.MatchString(v) {
		return "", apperror.NewValidation(name, hint)
	}
	return v, nil
}

// Enum returns the named string argument constrained to allowed values,
// or def when absent or empty. A present non-string value fails validation.
func (a Args) Enum(name string, allowed []string, def string) (string, error) {
	raw, present := a[name]
	if !present {
		return def, nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", apperror.NewValidation(name, "one of "+strings.Join(allowed, ", "))
	}
	if v == "" {
		return def, nil
	}
	for _, candidate := range allowed {
		if v == candidate {
			return v, nil
		}
	}
	return "", apperror.NewValidation(name, "one of "+strings.Join(allowed, ", "))
}

// Int returns the named numeric argument constrained to [min, max], or def
// when absent. A max below min means no upper bound. Non-integral numbers
// fail validation.
func (a Args) Int(name string, min, max, def int) (int, error) {
	raw, present := a[name]
	if !present {
		return def, nil
	}
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, apperror.NewValidation(name, "an integer")
	}
	n := int(f)
	if n < min {
		return 0, apperror.NewValidation(name, fmt.Sprintf("an integer >= %d", min))
	}
	if max >= min && n > max {
		return 0, apperror.NewValidation(name, fmt.Sprintf("an integer between %d and %d", min, max))
	}
	return n, nil
}
