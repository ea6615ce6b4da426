package port

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the custody program. This
// interface is the primary port into the application domain. Mock
// implementations are generated from it for testing.
//
// The typed operations trust the caller to have authenticated the identities
// it marks as signers; Execute performs that check for raw instructions.
type CampaignUseCase interface {
	// InitializeCampaign creates the campaign record and funds its vault
	// from the funder.
	InitializeCampaign(ctx context.Context, acc InitializeCampaignAccounts, args InitializeCampaignArgs) (*domain.Receipt, error)

	// PayPublisher pays a whitelisted publisher for a number of clicks.
	PayPublisher(ctx context.Context, acc PayPublisherAccounts, args PayPublisherArgs) (*domain.Receipt, error)

	// PayCommission pays the operator for the clicks accrued since the
	// previous commission payout.
	PayCommission(ctx context.Context, acc PayCommissionAccounts, args PayCommissionArgs) (*domain.Receipt, error)

	// UpdateCampaign extends the ad duration and/or tops up the vault.
	UpdateCampaign(ctx context.Context, acc UpdateCampaignAccounts, args UpdateCampaignArgs) (*domain.Receipt, error)

	// CloseCampaign destroys the campaign record and returns its storage
	// deposit to the closer.
	CloseCampaign(ctx context.Context, acc CloseCampaignAccounts, args CloseCampaignArgs) (*domain.Receipt, error)

	// CloseVault drains the vault to the advertiser.
	CloseVault(ctx context.Context, acc CloseVaultAccounts, args CloseVaultArgs) (*domain.Receipt, error)

	// Execute decodes and runs a single program instruction.
	Execute(ctx context.Context, ix solana.Instruction) (*domain.Receipt, error)

	// GetCampaign returns the record and vault state of a campaign.
	GetCampaign(ctx context.Context, campaignID uint64) (*CampaignView, error)

	// Balance returns the lamports held by an account.
	Balance(ctx context.Context, addr solana.PublicKey) (uint64, error)

	// GetStats aggregates a campaign's receipts over a period.
	GetStats(ctx context.Context, req StatsReq) (*domain.Stats, error)

	// ProgramID returns the identity the program derives addresses under.
	ProgramID() solana.PublicKey

	// Operator returns the identity entitled to commission payouts.
	Operator() solana.PublicKey
}

type InitializeCampaignArgs struct {
	CampaignID     uint64
	Name           string
	Advertiser     solana.PublicKey
	CostPerClick   uint64
	AdDurationDays uint64
	Publishers     []solana.PublicKey
	LockedValue    uint64
}

type InitializeCampaignAccounts struct {
	Campaign solana.PublicKey
	Vault    solana.PublicKey
	Funder   solana.PublicKey
}

type PayPublisherArgs struct {
	CampaignID uint64
	Clicks     uint64
}

type PayPublisherAccounts struct {
	Campaign  solana.PublicKey
	Vault     solana.PublicKey
	Publisher solana.PublicKey
}

type PayCommissionArgs struct {
	CampaignID uint64
	Percentage uint64
}

type PayCommissionAccounts struct {
	Campaign solana.PublicKey
	Vault    solana.PublicKey
	Operator solana.PublicKey
}

type UpdateCampaignArgs struct {
	CampaignID     uint64
	AdDurationDays uint64
	LockedValue    uint64
}

type UpdateCampaignAccounts struct {
	Campaign   solana.PublicKey
	Vault      solana.PublicKey
	Advertiser solana.PublicKey
}

type CloseCampaignArgs struct {
	CampaignID uint64
}

type CloseCampaignAccounts struct {
	Campaign solana.PublicKey
	Vault    solana.PublicKey
	Closer   solana.PublicKey
}

type CloseVaultArgs struct {
	CampaignID uint64
}

type CloseVaultAccounts struct {
	Campaign   solana.PublicKey
	Vault      solana.PublicKey
	Advertiser solana.PublicKey
}

// CampaignView is a read-only snapshot of a campaign and its vault.
type CampaignView struct {
	Campaign        domain.Campaign
	CampaignAddress solana.PublicKey
	VaultAddress    solana.PublicKey
	VaultBalance    uint64
}

// StatsWindow is the period covered by StatsReq when From is zero.
const StatsWindow = 24 * time.Hour

// StatsReq selects a campaign and period. A zero To means now, a zero From
// means StatsWindow before To.
type StatsReq struct {
	CampaignID uint64
	From       time.Time
	To         time.Time
}
