package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrPersistenceCorruption marks stored cart data that is present but unparseable.
var ErrPersistenceCorruption = errors.New("persistence corruption")

// WrapCorruption reports that the value stored under key could not be decoded.
// The result matches both ErrPersistenceCorruption and the decode error.
func WrapCorruption(err error, key string) error {
	if err == nil {
		return nil
	}
	return New(
		fmt.Errorf("%w: key %q: %w", ErrPersistenceCorruption, key, err),
		http.StatusUnprocessableEntity,
		CorruptionMessage,
	)
}
