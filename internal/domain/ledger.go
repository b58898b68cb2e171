package domain

import "github.com/shopspring/decimal"

// Amount bounds accepted from user input and the snapshot file
const (
	MaxAmountExponent = 20
	MaxAmountDigits   = 40
)

// CheckAmount returns ErrAmountOutOfRange when d has more than MaxAmountDigits
// significant digits or an exponent beyond ±MaxAmountExponent.
func CheckAmount(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return ErrAmountOutOfRange
	}
	c := d.Coefficient()
	if len(c.Abs(c).String()) > MaxAmountDigits {
		return ErrAmountOutOfRange
	}
	return nil
}

// Transaction is a named amount recorded against the ledger. Position in the
// ledger is its only identity.
type Transaction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Snapshot is the complete persisted state of the ledger
type Snapshot struct {
	Budget       decimal.Decimal `json:"budget"`
	Transactions []Transaction   `json:"transactions"`
}

// EmptySnapshot returns the state used when nothing has been persisted yet
func EmptySnapshot() Snapshot {
	return Snapshot{
		Budget:       decimal.Zero,
		Transactions: []Transaction{},
	}
}

// SnapshotRepository loads and stores the ledger snapshot wholesale.
// Load returns EmptySnapshot when nothing is stored and an error wrapping
// ErrCorruptSnapshot when the stored data cannot be read as a snapshot.
type SnapshotRepository interface {
	Load() (Snapshot, error)
	Save(snapshot Snapshot) error
}
