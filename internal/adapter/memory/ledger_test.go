package memory

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
)

func TestAtomicRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	a, b := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	require.NoError(t, l.Fund(context.Background(), a, 100))

	boom := errors.New("boom")
	err := l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		require.NoError(t, tx.Transfer(ctx, a, b, 60))
		require.NoError(t, tx.StoreRecord(ctx, b, []byte{1}))
		require.NoError(t, tx.RecordReceipt(ctx, domain.Receipt{ID: uuid.New(), CampaignID: 1}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	balance, err := l.Balance(ctx, a)
	require.NoError(t, err)
	require.Equal(t, uint64(100), balance)
	balance, err = l.Balance(ctx, b)
	require.NoError(t, err)
	require.Zero(t, balance)
	record, err := l.LoadRecord(ctx, b)
	require.NoError(t, err)
	require.Nil(t, record)
	receipts, err := l.Receipts(ctx, 1, time.Time{}, time.Now())
	require.NoError(t, err)
	require.Empty(t, receipts)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	a, b := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	require.NoError(t, l.Fund(context.Background(), a, 100))
	require.NoError(t, l.Fund(context.Background(), b, math.MaxUint64-10))

	err := l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.Transfer(ctx, a, b, 101)
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	err = l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.Transfer(ctx, a, b, 11)
	})
	require.ErrorIs(t, err, domain.ErrMathOverflow)

	require.NoError(t, l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.Transfer(ctx, b, a, 50)
	}))
	balance, err := l.Balance(ctx, a)
	require.NoError(t, err)
	require.Equal(t, uint64(150), balance)
}

func TestTransferSignedRequiresValidAuthority(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	program := solana.NewWallet().PublicKey()
	auth, err := pda.VaultAuthority(program, 1)
	require.NoError(t, err)
	to := solana.NewWallet().PublicKey()
	require.NoError(t, l.Fund(context.Background(), auth.Address, 500))

	forged := auth
	forged.Bump++
	err = l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.TransferSigned(ctx, forged, to, 100)
	})
	require.ErrorIs(t, err, domain.ErrAccountMismatch)

	require.NoError(t, l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.TransferSigned(ctx, auth, to, 500)
	}))
	balance, err := l.Balance(ctx, to)
	require.NoError(t, err)
	require.Equal(t, uint64(500), balance)
}

func TestReceiptsFilter(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		for i, id := range []uint64{1, 2, 1, 1} {
			r := domain.Receipt{ID: uuid.New(), CampaignID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
			if err := tx.RecordReceipt(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}))

	got, err := l.Receipts(ctx, 1, base.Add(time.Hour), base.Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		require.Equal(t, uint64(1), r.CampaignID)
	}
}

func TestAtomicHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewLedger().Atomic(ctx, func(context.Context, port.LedgerTx) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}
