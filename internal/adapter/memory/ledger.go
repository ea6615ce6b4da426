// Package memory implements port.Ledger in process memory. Units of work are
// serialized by a single mutex and rolled back by restoring a snapshot.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
)

// Ledger implements port.Ledger.
type Ledger struct {
	mu       sync.RWMutex
	balances map[solana.PublicKey]uint64
	records  map[solana.PublicKey][]byte
	receipts []domain.Receipt
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[solana.PublicKey]uint64),
		records:  make(map[solana.PublicKey][]byte),
	}
}

// Fund credits lamports to addr out of thin air. It exists for genesis
// allocations and tests.
func (l *Ledger) Fund(_ context.Context, addr solana.PublicKey, lamports uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum, err := domain.AddU64(l.balances[addr], lamports)
	if err != nil {
		return err
	}
	l.balances[addr] = sum
	return nil
}

// Atomic implements port.Ledger.
func (l *Ledger) Atomic(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	balances := maps.Clone(l.balances)
	records := maps.Clone(l.records)
	receipts := len(l.receipts)

	if err := fn(ctx, &tx{l: l}); err != nil {
		l.balances = balances
		l.records = records
		l.receipts = l.receipts[:receipts]
		return err
	}
	return nil
}

// Balance implements port.Ledger.
func (l *Ledger) Balance(_ context.Context, addr solana.PublicKey) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[addr], nil
}

// LoadRecord implements port.Ledger.
func (l *Ledger) LoadRecord(_ context.Context, addr solana.PublicKey) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records[addr]), nil
}

// Receipts implements port.Ledger.
func (l *Ledger) Receipts(_ context.Context, campaignID uint64, from, to time.Time) ([]domain.Receipt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Receipt
	for _, r := range l.receipts {
		if r.CampaignID != campaignID || r.CreatedAt.Before(from) || r.CreatedAt.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// tx is only used while l.mu is held by Atomic.
type tx struct {
	l *Ledger
}

func (t *tx) Balance(_ context.Context, addr solana.PublicKey) (uint64, error) {
	return t.l.balances[addr], nil
}

func (t *tx) Transfer(_ context.Context, from, to solana.PublicKey, amount uint64) error {
	return t.move(from, to, amount)
}

func (t *tx) TransferSigned(_ context.Context, from pda.Authority, to solana.PublicKey, amount uint64) error {
	if err := from.Verify(); err != nil {
		return err
	}
	return t.move(from.Address, to, amount)
}

func (t *tx) move(from, to solana.PublicKey, amount uint64) error {
	if from.Equals(to) {
		return nil
	}
	have := t.l.balances[from]
	if have < amount {
		return domain.ErrInsufficientFunds
	}
	credited, err := domain.AddU64(t.l.balances[to], amount)
	if err != nil {
		return err
	}
	if have == amount {
		delete(t.l.balances, from)
	} else {
		t.l.balances[from] = have - amount
	}
	if credited > 0 {
		t.l.balances[to] = credited
	}
	return nil
}

func (t *tx) LoadRecord(_ context.Context, addr solana.PublicKey) ([]byte, error) {
	return slices.Clone(t.l.records[addr]), nil
}

func (t *tx) StoreRecord(_ context.Context, addr solana.PublicKey, data []byte) error {
	t.l.records[addr] = slices.Clone(data)
	return nil
}

func (t *tx) DeleteRecord(_ context.Context, addr solana.PublicKey) error {
	delete(t.l.records, addr)
	return nil
}

func (t *tx) RecordReceipt(_ context.Context, r domain.Receipt) error {
	t.l.receipts = append(t.l.receipts, r)
	return nil
}
