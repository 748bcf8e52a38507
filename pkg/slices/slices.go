package sliceutils

func Map[T any, U any](values []T, mapper func(v T) U) []U {
	mapped := make([]U, len(values))
	for i, value := range values {
		mapped[i] = mapper(value)
	}
	return mapped
}

// Filter returns the values for which keep is true, in their original order.
// The input slice is not modified.
func Filter[T any](values []T, keep func(v T) bool) []T {
	kept := make([]T, 0, len(values))
	for _, value := range values {
		if keep(value) {
			kept = append(kept, value)
		}
	}
	return kept
}
