package domain

import "errors"

// Typed failures reported by the trade and wallet operations.
// Callers match with errors.Is; handlers map them onto HTTP statuses.
var (
	// ErrNotFound means a user or wallet lookup missed
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds means a BUY would overdraw the wallet
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidArgument means a bad trade type or non-positive amount
	ErrInvalidArgument = errors.New("invalid argument")
)
