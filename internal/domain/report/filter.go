package report

import "strings"

// Predicate is one facet of a conjunctive filter. A nil Predicate is an
// unset facet and matches everything.
type Predicate[T any] func(T) bool

// Apply returns the items satisfying every non-nil predicate. The input
// slice is never modified, so filtering is safe to re-run on each change.
func Apply[T any](items []T, predicates ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range predicates {
			if pred != nil && !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// Text matches items whose listed fields contain term, case-insensitively.
// A blank term leaves the facet unset.
func Text[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

// If gates a predicate on its facet being active.
func If[T any](active bool, pred func(T) bool) Predicate[T] {
	if !active {
		return nil
	}
	return pred
}
