package usecase

import (
	"context"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/port"
)

// PayPublisher transfers cost_per_click*clicks from the vault to a
// whitelisted publisher and advances the click and payout counters. The
// remaining value is re-read from the vault after the transfer.
func (u *CampaignUseCase) PayPublisher(ctx context.Context, acc port.PayPublisherAccounts, args port.PayPublisherArgs) (*domain.Receipt, error) {
	r, err := u.payPublisher(ctx, acc, args)
	return u.finish(domain.OpPayPublisher, args.CampaignID, r, err)
}

func (u *CampaignUseCase) payPublisher(ctx context.Context, acc port.PayPublisherAccounts, args port.PayPublisherArgs) (*domain.Receipt, error) {
	campAuth, vaultAuth, err := u.authorities(acc.Campaign, acc.Vault, args.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = external(acc.Publisher, campAuth, vaultAuth); err != nil {
		return nil, err
	}

	var receipt domain.Receipt
	err = u.ledger.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := loadCampaign(ctx, tx, campAuth.Address)
		if err != nil {
			return err
		}
		amount, err := domain.MulU64(c.CostPerClick, args.Clicks)
		if err != nil {
			return err
		}
		if amount == 0 {
			return domain.ErrInvalidAmount
		}
		if c.RemainingValue < amount {
			return domain.ErrInsufficientFunds
		}
		if !c.HasPublisher(acc.Publisher) {
			return domain.ErrUnauthorizedPublisher
		}

		total, err := domain.AddU64(c.TotalClicks, args.Clicks)
		if err != nil {
			return err
		}
		commission, err := domain.AddU64(c.CommissionClicks, args.Clicks)
		if err != nil {
			return err
		}
		txns, err := domain.AddU64(c.TransactionCount, 1)
		if err != nil {
			return err
		}

		if err = tx.TransferSigned(ctx, vaultAuth, acc.Publisher, amount); err != nil {
			return err
		}
		balance, err := tx.Balance(ctx, vaultAuth.Address)
		if err != nil {
			return err
		}

		c.TotalClicks = total
		c.CommissionClicks = commission
		c.TransactionCount = txns
		c.SyncRemaining(balance)
		if err = storeCampaign(ctx, tx, campAuth.Address, c); err != nil {
			return err
		}
		receipt = u.receipt(domain.OpPayPublisher, args.CampaignID, amount, acc.Publisher, args.Clicks)
		return tx.RecordReceipt(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
