package signer

import "strings"

// Rule defines an interface for header selection rules.
type Rule interface {
	IsValid(value string) bool
}

// Rules is a slice of Rule that implements Rule interface.
type Rules []Rule

// IsValid returns true if any rule in the slice validates the value.
func (r Rules) IsValid(value string) bool {
	for _, rule := range r {
		if rule.IsValid(value) {
			return true
		}
	}
	return false
}

// Patterns is a rule that matches values with any of the given prefixes.
// Matching is case-insensitive.
type Patterns []string

// IsValid returns true if value has any of the pattern prefixes.
func (p Patterns) IsValid(value string) bool {
	for _, pattern := range p {
		if strings.HasPrefix(strings.ToLower(value), strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// SignedHeaders selects the headers that take part in the canonicalized
// header block: every x-log-* and x-acs-* header.
var SignedHeaders = Rules{
	Patterns{LogHeaderPrefix, AcsHeaderPrefix},
}

// lookupHeader returns the value of name from headers, comparing names
// case-insensitively.
func lookupHeader(headers map[string]string, name string) (string, bool) {
	if v, ok := headers[name]; ok {
		return v, true
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
