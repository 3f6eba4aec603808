package stamp

import "strings"

// Filter decides whether a tag name is eligible for identifier assignment.
// It is a pure value: construct it once per run and share it freely.
//
// Precedence: exclusion always wins over inclusion. The exclude set is a
// safety valve (never stamp <html> or <head>) and must not be overridable by
// a broad include set. An empty include set means every tag is included.
//
// Tag names are compared case-insensitively. HTML tag names are
// conventionally lower-case but must match regardless of authored case.
type Filter struct {
	// include contains lower-cased tag names that are eligible.
	// Empty means all tags are eligible.
	include map[string]struct{}

	// exclude contains lower-cased tag names that are never eligible.
	exclude map[string]struct{}
}

// NewFilter creates a Filter from include and exclude tag name lists.
// Both lists may be nil or empty. Names are normalized to lower case once
// here so that Eligible is a plain map lookup.
func NewFilter(include, exclude []string) *Filter {
	return &Filter{
		include: toSet(include),
		exclude: toSet(exclude),
	}
}

// Eligible reports whether the tag name qualifies for identifier assignment.
// It has no side effects; repeated calls with the same input return the same
// result.
func (f *Filter) Eligible(tagName string) bool {
	name := strings.ToLower(tagName)

	if _, excluded := f.exclude[name]; excluded {
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	_, included := f.include[name]
	return included
}

// toSet builds a lower-cased membership set from a tag name list.
// Blank entries are dropped so that configuration like "div,,span" does not
// accidentally match elements with empty tag names.
func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}
