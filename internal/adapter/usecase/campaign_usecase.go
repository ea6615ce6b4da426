package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
	"adcustody/internal/metrics"
)

// Config holds the program identity and collaborators of a CampaignUseCase.
type Config struct {
	ProgramID solana.PublicKey
	Operator  solana.PublicKey

	// StrictClose refuses to close a campaign record while its vault still
	// holds value.
	StrictClose bool

	// Optional with defaults.
	Clock  clockwork.Clock
	Logger *slog.Logger
}

func (c *Config) Validate() error {
	if c.ProgramID.IsZero() {
		return errors.New("program id is required")
	}
	if c.Operator.IsZero() {
		return errors.New("operator is required")
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// CampaignUseCase implements port.CampaignUseCase on top of a host ledger.
// Every operation re-derives the campaign and vault addresses from the
// campaign id and runs inside a single ledger unit of work, so a failed
// precondition leaves no trace.
type CampaignUseCase struct {
	ledger port.Ledger
	cfg    Config
}

// NewCampaignUseCase creates a use case over ledger.
func NewCampaignUseCase(ledger port.Ledger, cfg Config) (*CampaignUseCase, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CampaignUseCase{ledger: ledger, cfg: cfg}, nil
}

func (u *CampaignUseCase) ProgramID() solana.PublicKey { return u.cfg.ProgramID }

func (u *CampaignUseCase) Operator() solana.PublicKey { return u.cfg.Operator }

// authorities checks the supplied campaign and vault addresses against the
// ones derived from campaignID.
func (u *CampaignUseCase) authorities(campaign, vault solana.PublicKey, campaignID uint64) (pda.Authority, pda.Authority, error) {
	campAuth, err := pda.Expect(campaign, u.cfg.ProgramID, pda.CampaignSeeds(campaignID))
	if err != nil {
		return pda.Authority{}, pda.Authority{}, fmt.Errorf("campaign: %w", err)
	}
	vaultAuth, err := pda.Expect(vault, u.cfg.ProgramID, pda.VaultSeeds(campaignID))
	if err != nil {
		return pda.Authority{}, pda.Authority{}, fmt.Errorf("vault: %w", err)
	}
	return campAuth, vaultAuth, nil
}

// external rejects identities that alias one of the program's own accounts.
func external(id solana.PublicKey, auths ...pda.Authority) error {
	if id.IsZero() {
		return fmt.Errorf("%w: zero identity", domain.ErrAccountMismatch)
	}
	for _, a := range auths {
		if id.Equals(a.Address) {
			return fmt.Errorf("%w: %s is a program account", domain.ErrAccountMismatch, id)
		}
	}
	return nil
}

type recordReader interface {
	LoadRecord(ctx context.Context, addr solana.PublicKey) ([]byte, error)
}

func loadCampaign(ctx context.Context, r recordReader, addr solana.PublicKey) (*domain.Campaign, error) {
	data, err := r.LoadRecord(ctx, addr)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, domain.ErrCampaignNotFound
	}
	var c domain.Campaign
	if err = c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &c, nil
}

func storeCampaign(ctx context.Context, tx port.LedgerTx, addr solana.PublicKey, c *domain.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := c.MarshalBinary()
	if err != nil {
		return err
	}
	return tx.StoreRecord(ctx, addr, data)
}

func (u *CampaignUseCase) receipt(op domain.Operation, campaignID, amount uint64, recipient solana.PublicKey, clicks uint64) domain.Receipt {
	return domain.Receipt{
		ID:         uuid.New(),
		Operation:  op,
		CampaignID: campaignID,
		Amount:     amount,
		Recipient:  recipient,
		Clicks:     clicks,
		CreatedAt:  u.cfg.Clock.Now().UTC(),
	}
}

// finish records the outcome of an operation in logs and metrics.
func (u *CampaignUseCase) finish(op domain.Operation, campaignID uint64, r *domain.Receipt, err error) (*domain.Receipt, error) {
	if err != nil {
		code := domain.CodeOf(err)
		metrics.Operations.WithLabelValues(string(op), string(code)).Inc()
		u.cfg.Logger.Debug("operation rejected",
			slog.String("operation", string(op)),
			slog.Uint64("campaign_id", campaignID),
			slog.String("code", string(code)),
			slog.Any("error", err))
		return nil, err
	}
	metrics.Operations.WithLabelValues(string(op), "ok").Inc()
	metrics.LamportsMoved.WithLabelValues(string(op)).Add(float64(r.Amount))
	if op == domain.OpPayPublisher {
		metrics.ClicksBilled.Add(float64(r.Clicks))
	}
	u.cfg.Logger.Info("operation committed",
		slog.String("operation", string(op)),
		slog.Uint64("campaign_id", campaignID),
		slog.Uint64("amount", r.Amount),
		slog.String("recipient", r.Recipient.String()),
		slog.String("receipt", r.ID.String()))
	return r, nil
}

// GetCampaign returns the record and vault balance of a campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID uint64) (*port.CampaignView, error) {
	campAddr, _, err := pda.DeriveCampaignAddress(u.cfg.ProgramID, campaignID)
	if err != nil {
		return nil, err
	}
	vaultAddr, _, err := pda.DeriveVaultAddress(u.cfg.ProgramID, campaignID)
	if err != nil {
		return nil, err
	}
	c, err := loadCampaign(ctx, u.ledger, campAddr)
	if err != nil {
		return nil, err
	}
	balance, err := u.ledger.Balance(ctx, vaultAddr)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{
		Campaign:        *c,
		CampaignAddress: campAddr,
		VaultAddress:    vaultAddr,
		VaultBalance:    balance,
	}, nil
}

// Balance returns the lamports held by addr.
func (u *CampaignUseCase) Balance(ctx context.Context, addr solana.PublicKey) (uint64, error) {
	return u.ledger.Balance(ctx, addr)
}

// GetStats aggregates the receipts of one campaign.
func (u *CampaignUseCase) GetStats(ctx context.Context, req port.StatsReq) (*domain.Stats, error) {
	to := req.To
	if to.IsZero() {
		to = u.cfg.Clock.Now()
	}
	from := req.From
	if from.IsZero() {
		from = to.Add(-port.StatsWindow)
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidPeriod
	}
	from, to = from.UTC(), to.UTC()
	receipts, err := u.ledger.Receipts(ctx, req.CampaignID, from, to)
	if err != nil {
		return nil, err
	}
	stats := &domain.Stats{CampaignID: req.CampaignID, From: from, To: to}
	for _, r := range receipts {
		stats.Add(r)
	}
	return stats, nil
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// unix returns the current clock reading in seconds.
func (u *CampaignUseCase) unix() int64 {
	return u.cfg.Clock.Now().Truncate(time.Second).Unix()
}
