// Package listing filters fetched records for the list screens.
package listing

import "strings"

// Predicate reports whether an item belongs in the result
type Predicate[T any] func(item T) bool

// Filter returns the items matching every predicate, in their original order
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Contains is a case-insensitive substring match; an empty needle matches everything
func Contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AnyContains matches when at least one of the fields contains needle
func AnyContains(needle string, fields ...string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	for _, field := range fields {
		if Contains(field, needle) {
			return true
		}
	}
	return false
}

// IsAll reports whether a filter selection means "no filter"
func IsAll(selected string) bool {
	return selected == "" || strings.EqualFold(selected, "all")
}

// Category matches value exactly unless selected is "All"
func Category(value, selected string) bool {
	return IsAll(selected) || value == selected
}

// Bool matches a tri-state selection: "all", the yes label or the no label
func Bool(value bool, selected, yes, no string) bool {
	switch {
	case IsAll(selected):
		return true
	case selected == yes:
		return value
	case selected == no:
		return !value
	default:
		return true
	}
}
