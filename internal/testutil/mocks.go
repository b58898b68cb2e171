package testutil

import (
	"context"

	"github.com/dafibh/budgetly/internal/domain"
)

// MockSnapshotRepository is a mock implementation of domain.SnapshotRepository
type MockSnapshotRepository struct {
	Stored    *domain.Snapshot
	SaveCalls int
	LoadErr   error
	SaveErr   error
}

// NewMockSnapshotRepository creates a new MockSnapshotRepository with nothing stored
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

// Load returns the stored snapshot, or the empty snapshot if none
func (m *MockSnapshotRepository) Load() (domain.Snapshot, error) {
	if m.LoadErr != nil {
		return domain.Snapshot{}, m.LoadErr
	}
	if m.Stored == nil {
		return domain.EmptySnapshot(), nil
	}
	return cloneSnapshot(*m.Stored), nil
}

// Save stores a copy of snapshot
func (m *MockSnapshotRepository) Save(snapshot domain.Snapshot) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := cloneSnapshot(snapshot)
	m.Stored = &stored
	return nil
}

func cloneSnapshot(s domain.Snapshot) domain.Snapshot {
	txs := make([]domain.Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	return domain.Snapshot{Budget: s.Budget, Transactions: txs}
}

// MockChatClient is a mock implementation of domain.ChatClient that records calls
type MockChatClient struct {
	Calls    int
	Requests []domain.ChatRequest
	Response string
	Err      error
}

// NewMockChatClient creates a MockChatClient that answers with response
func NewMockChatClient(response string) *MockChatClient {
	return &MockChatClient{Response: response}
}

// Complete records the request and returns the configured answer or error
func (m *MockChatClient) Complete(ctx context.Context, req domain.ChatRequest) (string, error) {
	m.Calls++
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
