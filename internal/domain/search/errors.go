package search

import (
	"errors"
	"fmt"
)

// Sentinel kinds for client input errors. The HTTP layer translates both
// to 4xx responses; neither ever aborts the process.
var (
	ErrUnknownAirport = errors.New("unknown airport")
	ErrInvalidDate    = errors.New("invalid date, use YYYY-MM-DD")
)

// newUnknownAirportError labels which endpoint of the query failed to
// resolve, e.g. "invalid origin airport: XXX".
func newUnknownAirportError(role, code string) error {
	return fmt.Errorf("invalid %s airport: %s: %w", role, code, ErrUnknownAirport)
}
