// Package patch holds helpers for merging partial update requests onto
// current entity state.
package patch

// Coalesce dereferences ptr when set, otherwise keeps fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
