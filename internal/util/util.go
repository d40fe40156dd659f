package util

// Map applies a function to each element of a slice and returns a new slice.
func Map[T1 any, T2 any](a []T1, f func(T1) T2) []T2 {
	if a == nil {
		return nil
	}
	b := make([]T2, len(a))
	for i, x := range a {
		b[i] = f(x)
	}
	return b
}

// Filter returns a new slice holding the elements that satisfy f.
func Filter[T any](list []T, f func(T) bool) []T {
	result := make([]T, 0, len(list))
	for _, x := range list {
		if f(x) {
			result = append(result, x)
		}
	}
	return result
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
