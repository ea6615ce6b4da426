package domain

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

// Operation names a ledger operation.
type Operation string

const (
	OpInitializeCampaign Operation = "initialize_campaign"
	OpPayPublisher       Operation = "pay_publisher"
	OpPayCommission      Operation = "pay_commission"
	OpUpdateCampaign     Operation = "update_campaign"
	OpCloseCampaign      Operation = "close_campaign"
	OpCloseVault         Operation = "close_vault"
)

// Receipt is the journal entry written alongside every committed operation.
// Amount is the value moved into or out of the vault (the storage deposit
// for close_campaign).
type Receipt struct {
	ID         uuid.UUID
	Operation  Operation
	CampaignID uint64
	Amount     uint64
	Recipient  solana.PublicKey
	Clicks     uint64
	CreatedAt  time.Time
}

// Stats aggregates a campaign's receipts over a period.
type Stats struct {
	CampaignID     uint64
	From           time.Time
	To             time.Time
	Payouts        int64
	Clicks         uint64
	PublisherPaid  uint64
	CommissionPaid uint64
	ToppedUp       uint64
	Refunded       uint64
}

// Add folds r into s.
func (s *Stats) Add(r Receipt) {
	switch r.Operation {
	case OpPayPublisher:
		s.Payouts++
		s.Clicks += r.Clicks
		s.PublisherPaid += r.Amount
	case OpPayCommission:
		s.CommissionPaid += r.Amount
	case OpInitializeCampaign, OpUpdateCampaign:
		s.ToppedUp += r.Amount
	case OpCloseVault:
		s.Refunded += r.Amount
	}
}
