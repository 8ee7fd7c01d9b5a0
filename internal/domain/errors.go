package domain

import "errors"

var (
	// ErrServiceUnavailable is returned when the blockchain node is unreachable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrCallFailed is returned when a read-only contract call reverts or the
	// method is missing from the deployed contract. Callers decide explicitly
	// whether to substitute a default or to propagate.
	ErrCallFailed = errors.New("contract call failed")

	// ErrDataNotExists is returned when a requested address or id has no row
	ErrDataNotExists = errors.New("data not exists")

	// ErrDataConflict is returned when a row with the same key already exists
	ErrDataConflict = errors.New("data conflict")
)
