package errors

import (
	"regexp"
	"unicode"
)

// eventNameRegex matches identifiers that splice safely into the DOT
// grammar: alphanumeric/underscore tokens not starting with a digit.
var eventNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateEventName checks that an event name is a DOT-safe identifier.
//
// The renderer itself trusts event names and performs no escaping, so a
// name that fails this check produces syntactically invalid output. This
// helper lets tooling flag such names before they reach Graphviz.
func ValidateEventName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidEventName, "event name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidEventName, "event name contains control characters")
		}
	}

	if !eventNameRegex.MatchString(name) {
		return New(ErrCodeInvalidEventName, "event name is not a valid graph identifier: %q", name)
	}

	return nil
}

// relationNameRegex matches relation names as the evaluator emits them:
// short lowercase tokens, possibly hyphenated (e.g. "rf", "ctrl", "po-loc").
var relationNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateRelationName checks that a relation name is well formed.
// Unknown names are fine (they render with default styling); this only
// rejects names that would break the emitted edge labels.
func ValidateRelationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRelation, "relation name cannot be empty")
	}

	if !relationNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRelation, "invalid relation name: %q", name)
	}

	return nil
}
