package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/shopspring/decimal"
)

// SnapshotRepository implements domain.SnapshotRepository on a single JSON file
type SnapshotRepository struct {
	path string
}

// NewSnapshotRepository creates a new SnapshotRepository backed by path
func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{path: path}
}

// Path returns the snapshot file location
func (r *SnapshotRepository) Path() string {
	return r.path
}

// snapshotFile mirrors the on-disk shape. Pointer and raw fields let Load tell
// a missing key apart from a zero value, and a JSON number from a quoted one.
type snapshotFile struct {
	Budget       json.RawMessage    `json:"budget"`
	Transactions *[]transactionFile `json:"transactions"`
}

type transactionFile struct {
	Name   *string         `json:"name"`
	Amount json.RawMessage `json:"amount"`
}

// Load reads the snapshot file. A missing file yields the empty snapshot.
func (r *SnapshotRepository) Load() (domain.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, fmt.Errorf("reading snapshot %s: %w", r.path, err)
	}

	var raw snapshotFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, r.path, err)
	}

	snapshot, err := raw.toDomain()
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, r.path, err)
	}
	return snapshot, nil
}

// Save writes the snapshot atomically, creating the parent directory if needed
func (r *SnapshotRepository) Save(snapshot domain.Snapshot) error {
	data, err := marshalSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

func (f snapshotFile) toDomain() (domain.Snapshot, error) {
	budget, err := parseNumber(f.Budget)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("budget: %w", err)
	}
	if f.Transactions == nil {
		return domain.Snapshot{}, errors.New("missing transactions")
	}

	transactions := make([]domain.Transaction, 0, len(*f.Transactions))
	for i, t := range *f.Transactions {
		if t.Name == nil {
			return domain.Snapshot{}, fmt.Errorf("transaction %d: missing name", i)
		}
		amount, err := parseNumber(t.Amount)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("transaction %d: amount: %w", i, err)
		}
		transactions = append(transactions, domain.Transaction{Name: *t.Name, Amount: amount})
	}

	return domain.Snapshot{Budget: budget, Transactions: transactions}, nil
}

// parseNumber accepts only a bare JSON number. Missing, null, string and
// other JSON values are rejected.
func parseNumber(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero, errMissingNumber
	}
	switch raw[0] {
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
	default:
		if bytes.Equal(raw, []byte("null")) {
			return decimal.Zero, errMissingNumber
		}
		return decimal.Zero, fmt.Errorf("expected a number, got %s", truncate(raw, 32))
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if err := domain.CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

var errMissingNumber = errors.New("missing")

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func marshalSnapshot(snapshot domain.Snapshot) ([]byte, error) {
	transactions := make([]transactionFile, len(snapshot.Transactions))
	for i, t := range snapshot.Transactions {
		name := t.Name
		transactions[i] = transactionFile{Name: &name, Amount: json.RawMessage(t.Amount.String())}
	}
	raw := snapshotFile{
		Budget:       json.RawMessage(snapshot.Budget.String()),
		Transactions: &transactions,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
