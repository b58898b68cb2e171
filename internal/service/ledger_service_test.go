package service

import (
	"errors"
	"testing"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/dafibh/budgetly/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedgerService() (*LedgerService, *testutil.MockSnapshotRepository) {
	repo := testutil.NewMockSnapshotRepository()
	return NewLedgerService(repo), repo
}

func TestLedger_NewIsEmpty(t *testing.T) {
	ledger, _ := setupLedgerService()

	assert.True(t, ledger.Budget().IsZero())
	assert.Empty(t, ledger.Transactions())
}

func TestLedger_AddToBudget_AllowsOverdraft(t *testing.T) {
	ledger, _ := setupLedgerService()

	ledger.AddToBudget(decimal.NewFromInt(10))
	ledger.AddToBudget(decimal.RequireFromString("-25.75"))

	assert.Equal(t, "-15.75", ledger.Budget().StringFixed(2))
}

func TestLedger_AddTransaction_DoesNotTouchBudget(t *testing.T) {
	ledger, _ := setupLedgerService()
	ledger.AddToBudget(decimal.NewFromInt(100))

	ledger.AddTransaction("coffee", decimal.RequireFromString("4.50"))

	assert.Equal(t, "100.00", ledger.Budget().StringFixed(2))
	require.Len(t, ledger.Transactions(), 1)
}

func TestLedger_RecordExpense_CallerDebits(t *testing.T) {
	ledger, _ := setupLedgerService()
	ledger.AddToBudget(decimal.NewFromInt(50))
	ledger.AddTransaction("rent", decimal.NewFromInt(20))
	before := len(ledger.Transactions())
	initial := ledger.Budget()

	amount := decimal.RequireFromString("4.50")
	ledger.AddTransaction("coffee", amount)
	ledger.AddToBudget(amount.Neg())

	assert.True(t, ledger.Budget().Equal(initial.Sub(amount)))
	txs := ledger.Transactions()
	require.Len(t, txs, before+1)
	assert.Equal(t, "coffee", txs[len(txs)-1].Name)
	assert.True(t, txs[len(txs)-1].Amount.Equal(amount))
}

func TestLedger_Transactions_ReturnsCopy(t *testing.T) {
	ledger, _ := setupLedgerService()
	ledger.AddTransaction("coffee", decimal.NewFromInt(3))

	txs := ledger.Transactions()
	txs[0].Name = "mutated"
	_ = append(txs, domain.Transaction{Name: "extra"})

	assert.Equal(t, "coffee", ledger.Transactions()[0].Name)
	assert.Len(t, ledger.Transactions(), 1)
}

func TestLedger_SnapshotRoundTrip(t *testing.T) {
	ledger, _ := setupLedgerService()
	ledger.AddToBudget(decimal.RequireFromString("250.10"))
	ledger.AddTransaction("groceries", decimal.RequireFromString("82.31"))
	ledger.AddTransaction("bus", decimal.RequireFromString("2.75"))
	ledger.AddTransaction("groceries", decimal.RequireFromString("10"))

	other, _ := setupLedgerService()
	other.Load(ledger.Snapshot())

	assert.True(t, ledger.Budget().Equal(other.Budget()))
	assert.Equal(t, ledger.Transactions(), other.Transactions())
}

func TestLedger_Load_DoesNotAliasSnapshot(t *testing.T) {
	ledger, _ := setupLedgerService()
	snapshot := domain.Snapshot{
		Budget:       decimal.NewFromInt(5),
		Transactions: []domain.Transaction{{Name: "a", Amount: decimal.NewFromInt(1)}},
	}

	ledger.Load(snapshot)
	snapshot.Transactions[0].Name = "changed"

	assert.Equal(t, "a", ledger.Transactions()[0].Name)
}

func TestLedger_OpenAndSave(t *testing.T) {
	ledger, repo := setupLedgerService()
	repo.Stored = &domain.Snapshot{
		Budget:       decimal.NewFromInt(40),
		Transactions: []domain.Transaction{{Name: "book", Amount: decimal.NewFromInt(12)}},
	}

	require.NoError(t, ledger.Open())
	assert.Equal(t, "40", ledger.Budget().String())
	require.Len(t, ledger.Transactions(), 1)

	ledger.AddTransaction("pen", decimal.NewFromInt(2))
	ledger.AddToBudget(decimal.NewFromInt(-2))
	require.NoError(t, ledger.Save())

	assert.Equal(t, 1, repo.SaveCalls)
	assert.Equal(t, "38", repo.Stored.Budget.String())
	assert.Len(t, repo.Stored.Transactions, 2)
}

func TestLedger_Open_PropagatesCorruption(t *testing.T) {
	ledger, repo := setupLedgerService()
	ledger.AddToBudget(decimal.NewFromInt(7))
	repo.LoadErr = domain.ErrCorruptSnapshot

	err := ledger.Open()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCorruptSnapshot))
	assert.Equal(t, "7", ledger.Budget().String())
}
