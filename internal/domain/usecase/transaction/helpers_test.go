package transaction

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/persistence"
	mcore "github.com/amirhossein-jamali/momo-gateway/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newLogger returns a logger mock that accepts any entry
func newLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

// newTimeProvider returns a frozen clock whose timers fire immediately
func newTimeProvider(t *testing.T) *mcore.MockTimeProvider {
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()
	tp.EXPECT().After(mock.Anything).RunAndReturn(func(coreport.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- fixedNow
		return ch
	}).Maybe()
	return tp
}

// memoryStore is an in-memory transaction store. WithinTransaction runs one
// transaction at a time, which gives the same outcome as row locking.
type memoryStore struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	records map[string]*entity.PaymentTransaction
	nextID  uint64
}

var (
	_ persistence.TransactionRepository = (*memoryStore)(nil)
	_ persistence.UnitOfWork            = (*memoryStore)(nil)
)

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]*entity.PaymentTransaction)}
}

func (s *memoryStore) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (s *memoryStore) Commit(context.Context) error                        { return nil }
func (s *memoryStore) Rollback(context.Context) error                      { return nil }

func (s *memoryStore) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

func (s *memoryStore) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return s
}

func (s *memoryStore) Create(_ context.Context, txn *entity.PaymentTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[txn.ExternalReference]; ok {
		return errs.ErrDuplicateReference
	}
	s.nextID++
	txn.ID = s.nextID
	stored := *txn
	s.records[txn.ExternalReference] = &stored
	return nil
}

func (s *memoryStore) GetByReference(_ context.Context, reference string) (*entity.PaymentTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.records[reference]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	found := *txn
	return &found, nil
}

func (s *memoryStore) FindIncomplete(_ context.Context, itemID, userID uint64) (*entity.PaymentTransaction, error) {
	incomplete := s.incomplete(itemID, userID)
	if len(incomplete) == 0 {
		return nil, errs.ErrTransactionNotFound
	}
	return incomplete[len(incomplete)-1], nil
}

func (s *memoryStore) LockIncomplete(ctx context.Context, reference string) (*entity.PaymentTransaction, error) {
	txn, err := s.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !txn.IsIncomplete() {
		return nil, errs.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *memoryStore) MarkSettled(_ context.Context, reference string, settlementID uint64, providerTxnID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.records[reference]
	if !ok || !txn.IsIncomplete() {
		return errs.ErrAlreadySettled
	}
	txn.Status = entity.StatusSettled
	txn.SettlementID = settlementID
	txn.ProviderTransactionID = providerTxnID
	completed := at
	txn.CompletedAt = &completed
	return nil
}

func (s *memoryStore) MarkFlagged(_ context.Context, reference string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.records[reference]
	if !ok || !txn.IsIncomplete() {
		return errs.ErrTransactionNotFound
	}
	txn.Status = entity.StatusFraudFlagged
	txn.FlagReason = reason
	return nil
}

func (s *memoryStore) Delete(_ context.Context, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn, ok := s.records[reference]; ok && txn.IsIncomplete() {
		delete(s.records, reference)
	}
	return nil
}

func (s *memoryStore) DeleteIncomplete(_ context.Context, itemID, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for ref, txn := range s.records {
		if txn.ItemID == itemID && txn.UserID == userID && txn.IsIncomplete() {
			delete(s.records, ref)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memoryStore) DeleteAllIncomplete(_ context.Context, createdBefore time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for ref, txn := range s.records {
		if txn.IsIncomplete() && txn.CreatedAt.Before(createdBefore) {
			delete(s.records, ref)
			deleted++
		}
	}
	return deleted, nil
}

// incomplete lists the incomplete records of a pair, oldest first
func (s *memoryStore) incomplete(itemID, userID uint64) []*entity.PaymentTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PaymentTransaction
	for _, txn := range s.records {
		if txn.ItemID == itemID && txn.UserID == userID && txn.IsIncomplete() {
			found := *txn
			out = append(out, &found)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// seed stores a pending record for enrol_fee/fee
func (s *memoryStore) seed(reference string, itemID, userID uint64, createdAt time.Time) {
	_ = s.Create(context.Background(), &entity.PaymentTransaction{
		Component:         "enrol_fee",
		Area:              "fee",
		ItemID:            itemID,
		UserID:            userID,
		ExternalReference: reference,
		ProviderToken:     "token-" + reference,
		Status:            entity.StatusPending,
		CreatedAt:         createdAt,
	})
}
