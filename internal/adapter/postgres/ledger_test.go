package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"adcustody/internal/adapter/usecase"
	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
	"adcustody/internal/db"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("adcustody"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to cleanup postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewLedger(pool)
}

func TestLedgerTransfersAndRollback(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	a, b := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	require.NoError(t, l.Fund(ctx, a, 1_000))

	err := l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := tx.Transfer(ctx, a, b, 400); err != nil {
			return err
		}
		if err := tx.StoreRecord(ctx, b, []byte{1, 2, 3}); err != nil {
			return err
		}
		return tx.Transfer(ctx, a, b, 601)
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	balance, err := l.Balance(ctx, a)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000), balance)
	data, err := l.LoadRecord(ctx, b)
	require.NoError(t, err)
	require.Nil(t, data)

	require.NoError(t, l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.Transfer(ctx, a, b, 1_000)
	}))
	balance, err = l.Balance(ctx, a)
	require.NoError(t, err)
	require.Zero(t, balance)
	balance, err = l.Balance(ctx, b)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000), balance)
}

func TestLedgerRejectsBalancesBeyondStorage(t *testing.T) {
	l := newTestLedger(t)
	err := l.Fund(context.Background(), solana.NewWallet().PublicKey(), 1<<63)
	require.ErrorIs(t, err, domain.ErrMathOverflow)
}

func TestLedgerReceipts(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	recipient := solana.NewWallet().PublicKey()
	require.NoError(t, l.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		for i, id := range []uint64{1, 1 << 63, 1} {
			err := tx.RecordReceipt(ctx, domain.Receipt{
				ID:         uuid.New(),
				Operation:  domain.OpPayPublisher,
				CampaignID: id,
				Amount:     100,
				Recipient:  recipient,
				Clicks:     1,
				CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			})
			if err != nil {
				return err
			}
		}
		return nil
	}))

	got, err := l.Receipts(ctx, 1, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, recipient, got[0].Recipient)
	require.Equal(t, base, got[0].CreatedAt)

	got, err = l.Receipts(ctx, 1<<63, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, uint64(1<<63), got[0].CampaignID)
}

// TestCampaignLifecycleOnPostgres runs the custody operations against the
// database, including concurrent payouts that must not overdraw the vault.
func TestCampaignLifecycleOnPostgres(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	program, operator := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	funder, publisher := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	require.NoError(t, l.Fund(ctx, funder, 10_000_000_000))

	svc, err := usecase.NewCampaignUseCase(l, usecase.Config{ProgramID: program, Operator: operator, StrictClose: true})
	require.NoError(t, err)
	campaign, _, err := pda.DeriveCampaignAddress(program, 1)
	require.NoError(t, err)
	vault, _, err := pda.DeriveVaultAddress(program, 1)
	require.NoError(t, err)

	_, err = svc.InitializeCampaign(ctx, port.InitializeCampaignAccounts{Campaign: campaign, Vault: vault, Funder: funder},
		port.InitializeCampaignArgs{
			CampaignID:   1,
			Name:         "Postgres",
			Advertiser:   funder,
			CostPerClick: 100,
			Publishers:   []solana.PublicKey{publisher},
			LockedValue:  1_000,
		})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.PayPublisher(ctx, port.PayPublisherAccounts{Campaign: campaign, Vault: vault, Publisher: publisher},
				port.PayPublisherArgs{CampaignID: 1, Clicks: 1})
		}()
	}
	wg.Wait()

	view, err := svc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, view.VaultBalance, view.Campaign.RemainingValue)
	paid, err := l.Balance(ctx, publisher)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000)-view.VaultBalance, paid)
	require.Equal(t, view.Campaign.TransactionCount*100, paid)
}
