package utils

import "fmt"

// WrapError prefixes err with msg while keeping it reachable through errors.Is and errors.As.
func WrapError(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
