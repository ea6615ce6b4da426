package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
)

// serializationFailure is the SQLSTATE of a serializable transaction that
// lost a conflict.
const serializationFailure = "40001"

// maxAttempts bounds how often a conflicting unit of work is replayed.
const maxAttempts = 5

// Ledger implements port.Ledger on PostgreSQL using pgxpool. Balances are
// stored as BIGINT, so no account can hold more than math.MaxInt64 lamports.
type Ledger struct {
	pool *pgxpool.Pool
}

// NewLedger returns a ledger backed by pool.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

// Atomic runs fn inside a serializable transaction. Rows touched through tx
// are locked with FOR UPDATE. Transactions aborted by a serialization
// conflict are replayed; fn must therefore be free of outside side effects.
func (l *Ledger) Atomic(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = l.atomic(ctx, fn)
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != serializationFailure {
			return err
		}
	}
	return err
}

func (l *Ledger) atomic(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(ctx, &ledgerTx{tx: tx})
}

// Fund credits lamports to addr. It is used for genesis allocations.
func (l *Ledger) Fund(ctx context.Context, addr solana.PublicKey, lamports uint64) error {
	return l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		t := tx.(*ledgerTx)
		have, err := t.Balance(ctx, addr)
		if err != nil {
			return err
		}
		sum, err := domain.AddU64(have, lamports)
		if err != nil {
			return err
		}
		return t.setBalance(ctx, addr, sum)
	})
}

// Balance implements port.Ledger.
func (l *Ledger) Balance(ctx context.Context, addr solana.PublicKey) (uint64, error) {
	return balance(ctx, l.pool, `SELECT lamports FROM accounts WHERE address = $1`, addr)
}

// LoadRecord implements port.Ledger.
func (l *Ledger) LoadRecord(ctx context.Context, addr solana.PublicKey) ([]byte, error) {
	return record(ctx, l.pool, `SELECT data FROM campaign_records WHERE address = $1`, addr)
}

// Receipts implements port.Ledger.
func (l *Ledger) Receipts(ctx context.Context, campaignID uint64, from, to time.Time) ([]domain.Receipt, error) {
	rows, err := l.pool.Query(ctx, `
        SELECT id, operation, amount, recipient, clicks, created_at
        FROM receipts
        WHERE campaign_id = $1 AND created_at >= $2 AND created_at <= $3
        ORDER BY created_at`, int64(campaignID), from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Receipt, error) {
		var (
			r         domain.Receipt
			op        string
			recipient string
			amount    int64
			clicks    int64
		)
		if err := row.Scan(&r.ID, &op, &amount, &recipient, &clicks, &r.CreatedAt); err != nil {
			return r, err
		}
		key, err := solana.PublicKeyFromBase58(recipient)
		if err != nil {
			return r, fmt.Errorf("receipt %s: %w", r.ID, err)
		}
		r.Operation = domain.Operation(op)
		r.CampaignID = campaignID
		r.Amount = uint64(amount)
		r.Recipient = key
		r.Clicks = uint64(clicks)
		r.CreatedAt = r.CreatedAt.UTC()
		return r, nil
	})
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func balance(ctx context.Context, q querier, query string, addr solana.PublicKey) (uint64, error) {
	var lamports int64
	err := q.QueryRow(ctx, query, addr.String()).Scan(&lamports)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return uint64(lamports), nil
}

func record(ctx context.Context, q querier, query string, addr solana.PublicKey) ([]byte, error) {
	var data []byte
	err := q.QueryRow(ctx, query, addr.String()).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ledgerTx implements port.LedgerTx on an open transaction.
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Balance(ctx context.Context, addr solana.PublicKey) (uint64, error) {
	return balance(ctx, t.tx, `SELECT lamports FROM accounts WHERE address = $1 FOR UPDATE`, addr)
}

func (t *ledgerTx) Transfer(ctx context.Context, from, to solana.PublicKey, amount uint64) error {
	return t.move(ctx, from, to, amount)
}

func (t *ledgerTx) TransferSigned(ctx context.Context, from pda.Authority, to solana.PublicKey, amount uint64) error {
	if err := from.Verify(); err != nil {
		return err
	}
	return t.move(ctx, from.Address, to, amount)
}

func (t *ledgerTx) move(ctx context.Context, from, to solana.PublicKey, amount uint64) error {
	if from.Equals(to) || amount == 0 {
		return nil
	}
	have, err := t.Balance(ctx, from)
	if err != nil {
		return err
	}
	if have < amount {
		return domain.ErrInsufficientFunds
	}
	credit, err := t.Balance(ctx, to)
	if err != nil {
		return err
	}
	credit, err = domain.AddU64(credit, amount)
	if err != nil {
		return err
	}
	if err = t.setBalance(ctx, from, have-amount); err != nil {
		return err
	}
	return t.setBalance(ctx, to, credit)
}

// setBalance writes the balance of addr. Empty accounts are removed.
func (t *ledgerTx) setBalance(ctx context.Context, addr solana.PublicKey, lamports uint64) error {
	if lamports > math.MaxInt64 {
		return fmt.Errorf("%w: balance of %s exceeds storage range", domain.ErrMathOverflow, addr)
	}
	if lamports == 0 {
		_, err := t.tx.Exec(ctx, `DELETE FROM accounts WHERE address = $1`, addr.String())
		return err
	}
	_, err := t.tx.Exec(ctx, `
        INSERT INTO accounts (address, lamports, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (address) DO UPDATE SET lamports = EXCLUDED.lamports, updated_at = now()`,
		addr.String(), int64(lamports))
	return err
}

func (t *ledgerTx) LoadRecord(ctx context.Context, addr solana.PublicKey) ([]byte, error) {
	return record(ctx, t.tx, `SELECT data FROM campaign_records WHERE address = $1 FOR UPDATE`, addr)
}

func (t *ledgerTx) StoreRecord(ctx context.Context, addr solana.PublicKey, data []byte) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO campaign_records (address, data, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (address) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		addr.String(), data)
	return err
}

func (t *ledgerTx) DeleteRecord(ctx context.Context, addr solana.PublicKey) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM campaign_records WHERE address = $1`, addr.String())
	return err
}

// RecordReceipt stores r. Campaign ids are stored bit-for-bit in a BIGINT
// column.
func (t *ledgerTx) RecordReceipt(ctx context.Context, r domain.Receipt) error {
	if r.Amount > math.MaxInt64 || r.Clicks > math.MaxInt64 {
		return fmt.Errorf("%w: receipt exceeds storage range", domain.ErrMathOverflow)
	}
	_, err := t.tx.Exec(ctx, `
        INSERT INTO receipts (id, operation, campaign_id, amount, recipient, clicks, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, string(r.Operation), int64(r.CampaignID), int64(r.Amount), r.Recipient.String(), int64(r.Clicks), r.CreatedAt)
	return err
}

var (
	_ port.Ledger   = (*Ledger)(nil)
	_ port.LedgerTx = (*ledgerTx)(nil)
)
