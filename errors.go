package bankbook

import "errors"

// Domain errors returned by Account and Store operations. They are matched
// with errors.Is so callers can map each kind to a distinct message.
var (
	// ErrInvalidName reports an account holder name that is empty or
	// whitespace-only after trimming.
	ErrInvalidName = errors.New("account name cannot be empty")

	// ErrInvalidAmount reports a non-positive amount, or a negative initial
	// deposit.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds reports a withdrawal larger than the current
	// balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrAccountNotFound reports an unknown account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPersistence reports a failed save of the durable file. The in-memory
	// store is rolled back to its pre-operation state before this is returned.
	ErrPersistence = errors.New("could not persist account data")

	// ErrCorruptStorage reports a durable file that exists but cannot be
	// decoded. The store recovers by starting empty; the error is the warning
	// channel to the caller.
	ErrCorruptStorage = errors.New("corrupt account data")
)
