package usecase

import (
	"context"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/port"
)

// PayCommission settles the operator's commission for the clicks accrued
// since the previous settlement:
//
//	cost_per_click * commission_clicks * (percentage / 100)
//	  + transaction_count * domain.FeePerTransaction
//
// The percentage division truncates, so only 100 yields a click-based share;
// below that the amount is the per-transaction fee alone.
func (u *CampaignUseCase) PayCommission(ctx context.Context, acc port.PayCommissionAccounts, args port.PayCommissionArgs) (*domain.Receipt, error) {
	r, err := u.payCommission(ctx, acc, args)
	return u.finish(domain.OpPayCommission, args.CampaignID, r, err)
}

// CommissionAmount computes the commission owed by c at percentage.
func CommissionAmount(c *domain.Campaign, percentage uint64) (uint64, error) {
	if percentage > 100 {
		return 0, domain.ErrInvalidPercentage
	}
	share, err := domain.MulU64(c.CostPerClick, c.CommissionClicks)
	if err != nil {
		return 0, err
	}
	share, err = domain.MulU64(share, percentage/100)
	if err != nil {
		return 0, err
	}
	fees, err := domain.MulU64(c.TransactionCount, domain.FeePerTransaction)
	if err != nil {
		return 0, err
	}
	return domain.AddU64(share, fees)
}

func (u *CampaignUseCase) payCommission(ctx context.Context, acc port.PayCommissionAccounts, args port.PayCommissionArgs) (*domain.Receipt, error) {
	if args.Percentage > 100 {
		return nil, domain.ErrInvalidPercentage
	}
	campAuth, vaultAuth, err := u.authorities(acc.Campaign, acc.Vault, args.CampaignID)
	if err != nil {
		return nil, err
	}
	if !acc.Operator.Equals(u.cfg.Operator) {
		return nil, domain.ErrInvalidOperator
	}

	var receipt domain.Receipt
	err = u.ledger.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := loadCampaign(ctx, tx, campAuth.Address)
		if err != nil {
			return err
		}
		if c.CommissionClicks == 0 {
			return domain.ErrNoClicksForCommission
		}
		amount, err := CommissionAmount(c, args.Percentage)
		if err != nil {
			return err
		}
		if amount == 0 {
			return domain.ErrInvalidAmount
		}
		if c.RemainingValue < amount {
			return domain.ErrInsufficientFunds
		}

		if err = tx.TransferSigned(ctx, vaultAuth, acc.Operator, amount); err != nil {
			return err
		}
		balance, err := tx.Balance(ctx, vaultAuth.Address)
		if err != nil {
			return err
		}

		clicks := c.CommissionClicks
		c.SyncRemaining(balance)
		c.TransactionCount = 0
		c.CommissionClicks = 0
		if err = storeCampaign(ctx, tx, campAuth.Address, c); err != nil {
			return err
		}
		receipt = u.receipt(domain.OpPayCommission, args.CampaignID, amount, acc.Operator, clicks)
		return tx.RecordReceipt(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
