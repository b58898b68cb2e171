package service

import (
	"github.com/dafibh/budgetly/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LedgerService holds the budget balance and transaction history for a session.
// It is not safe for concurrent use.
type LedgerService struct {
	snapshotRepo domain.SnapshotRepository
	budget       decimal.Decimal
	transactions []domain.Transaction
}

// NewLedgerService creates an empty LedgerService
func NewLedgerService(snapshotRepo domain.SnapshotRepository) *LedgerService {
	return &LedgerService{
		snapshotRepo: snapshotRepo,
		budget:       decimal.Zero,
		transactions: []domain.Transaction{},
	}
}

// Open replaces the in-memory ledger with the persisted snapshot
func (s *LedgerService) Open() error {
	snapshot, err := s.snapshotRepo.Load()
	if err != nil {
		return err
	}
	s.Load(snapshot)
	log.Debug().Str("budget", s.budget.String()).Int("transactions", len(s.transactions)).Msg("Ledger loaded")
	return nil
}

// Save persists the current ledger wholesale
func (s *LedgerService) Save() error {
	if err := s.snapshotRepo.Save(s.Snapshot()); err != nil {
		return err
	}
	log.Debug().Str("budget", s.budget.String()).Int("transactions", len(s.transactions)).Msg("Ledger saved")
	return nil
}

// Load replaces the in-memory ledger with snapshot
func (s *LedgerService) Load(snapshot domain.Snapshot) {
	s.budget = snapshot.Budget
	s.transactions = make([]domain.Transaction, len(snapshot.Transactions))
	copy(s.transactions, snapshot.Transactions)
}

// Snapshot returns a copy of the current ledger state
func (s *LedgerService) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Budget:       s.budget,
		Transactions: s.Transactions(),
	}
}

// Budget returns the current balance
func (s *LedgerService) Budget() decimal.Decimal {
	return s.budget
}

// AddToBudget adds a signed amount to the balance. The balance may go negative.
func (s *LedgerService) AddToBudget(amount decimal.Decimal) {
	s.budget = s.budget.Add(amount)
}

// AddTransaction appends a transaction. It does not touch the balance; callers
// debit the budget themselves.
func (s *LedgerService) AddTransaction(name string, amount decimal.Decimal) {
	s.transactions = append(s.transactions, domain.Transaction{Name: name, Amount: amount})
}

// Transactions returns the transactions in insertion order
func (s *LedgerService) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
