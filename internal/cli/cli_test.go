package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	httpadapter "adcustody/internal/adapter/http"
	"adcustody/internal/adapter/memory"
	"adcustody/internal/adapter/usecase"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDerive(t *testing.T) {
	program := solana.MustPublicKeyFromBase58(DefaultProgramID)
	campaign, _, err := pda.DeriveCampaignAddress(program, 12)
	require.NoError(t, err)
	vault, _, err := pda.DeriveVaultAddress(program, 12)
	require.NoError(t, err)

	out, err := run(t, "derive", "--campaign-id", "12")
	require.NoError(t, err)
	require.Contains(t, out, campaign.String())
	require.Contains(t, out, vault.String())
}

func TestPayPublisherAgainstServer(t *testing.T) {
	ctx := context.Background()
	program := solana.MustPublicKeyFromBase58(DefaultProgramID)
	operator, advertiser, publisher := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()

	ledger := memory.NewLedger()
	require.NoError(t, ledger.Fund(ctx, advertiser, 10_000_000_000))
	svc, err := usecase.NewCampaignUseCase(ledger, usecase.Config{ProgramID: program, Operator: operator, StrictClose: true})
	require.NoError(t, err)
	campaign, _, err := pda.DeriveCampaignAddress(program, 1)
	require.NoError(t, err)
	vault, _, err := pda.DeriveVaultAddress(program, 1)
	require.NoError(t, err)
	_, err = svc.InitializeCampaign(ctx, port.InitializeCampaignAccounts{Campaign: campaign, Vault: vault, Funder: advertiser},
		port.InitializeCampaignArgs{
			CampaignID:   1,
			Name:         "CLI",
			Advertiser:   advertiser,
			CostPerClick: 100,
			Publishers:   []solana.PublicKey{publisher},
			LockedValue:  1_000_000,
		})
	require.NoError(t, err)

	srv := httptest.NewServer(httpadapter.NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Router())
	defer srv.Close()

	out, err := run(t, "--server", srv.URL, "pay-publisher", "--campaign-id", "1", "--clicks", "5", "--publisher", publisher.String())
	require.NoError(t, err)
	var receipt struct {
		Amount uint64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &receipt))
	require.Equal(t, uint64(500), receipt.Amount)

	out, err = run(t, "--server", srv.URL, "show", "--campaign-id", "1")
	require.NoError(t, err)
	require.Contains(t, out, `"remaining_value": 999500`)

	_, err = run(t, "--server", srv.URL, "pay-commission", "--campaign-id", "1", "--operator", publisher.String())
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "INVALID_OPERATOR"), err.Error())
}
