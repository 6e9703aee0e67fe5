package dataset

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrRead  = errors.New("dataset file unreadable")
	ErrParse = errors.New("dataset file is not valid JSON")
)
