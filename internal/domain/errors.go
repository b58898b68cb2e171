package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidRiskLevel = errors.New("invalid risk level")
	ErrInvalidAge       = errors.New("invalid age")
	ErrCorruptSnapshot  = errors.New("corrupt ledger snapshot")
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// Validation constants
const (
	MinAge = 0
	MaxAge = 120 // exclusive
)
