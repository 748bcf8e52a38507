package errorutils

import "fmt"

// Try panics on a non-nil error. It is meant for program entry points only.
func Try(err error) {
	if err != nil {
		panic(err)
	}
}

func Must[T any](v T, err error) T {
	Try(err)
	return v
}

// Wrap prefixes err with a formatted message and keeps it matchable with errors.Is.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
