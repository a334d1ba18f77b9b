package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// patternTable maps canonical technology labels to case-insensitive
// regular expressions tested against free text. Each handler kind owns its
// own table; tables are never merged.
type patternTable map[string]*regexp.Regexp

// newPatternTable compiles a label -> regex mapping. Patterns are fixed
// string literals, so compilation failures are programmer errors.
func newPatternTable(rules map[string]string) patternTable {
	t := make(patternTable, len(rules))
	for label, pattern := range rules {
		t[label] = regexp.MustCompile("(?i)" + pattern)
	}
	return t
}

// detect returns the sorted set of labels whose pattern matches content.
// A label appears at most once regardless of how many times it matches.
func (t patternTable) detect(content string) []string {
	var labels []string
	for label, re := range t {
		if re.MatchString(content) {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// tokenRule associates a lowercase substring with a canonical label.
type tokenRule struct {
	token string
	label string
}

// tokenTable is an ordered list of substring rules matched against
// discrete dependency names. Order matters: the first rule whose token is
// contained in a dependency name wins for that dependency.
type tokenTable []tokenRule

// detect returns the sorted set of labels triggered by deps. Each
// dependency contributes at most one label; unknown names are ignored.
func (t tokenTable) detect(deps []string) []string {
	seen := make(map[string]bool)
	for _, dep := range deps {
		lower := strings.ToLower(dep)
		for _, rule := range t {
			if strings.Contains(lower, rule.token) {
				seen[rule.label] = true
				break
			}
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
