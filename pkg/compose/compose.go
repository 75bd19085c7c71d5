// Package compose provides the left-to-right function composition Tide
// assembles widgets with. A pipeline threads a value through a series of
// steps; the first failing step aborts the run.
package compose

// Step transforms a value, returning the extended value or an error.
type Step[T any] func(T) (T, error)

// Pipe composes steps into a single step that applies them left to right.
// Nil steps are skipped. On failure Pipe returns the zero value together
// with the failing step's error, so callers never observe a partially
// built result.
func Pipe[T any](steps ...Step[T]) Step[T] {
	return func(v T) (T, error) {
		for _, step := range steps {
			if step == nil {
				continue
			}
			next, err := step(v)
			if err != nil {
				var zero T
				return zero, err
			}
			v = next
		}
		return v, nil
	}
}
