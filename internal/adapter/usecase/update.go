package usecase

import (
	"context"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/port"
)

// UpdateCampaign extends the ad duration and tops up the vault from the
// advertiser. At least one of the two deltas must be non-zero.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, acc port.UpdateCampaignAccounts, args port.UpdateCampaignArgs) (*domain.Receipt, error) {
	r, err := u.updateCampaign(ctx, acc, args)
	return u.finish(domain.OpUpdateCampaign, args.CampaignID, r, err)
}

func (u *CampaignUseCase) updateCampaign(ctx context.Context, acc port.UpdateCampaignAccounts, args port.UpdateCampaignArgs) (*domain.Receipt, error) {
	if args.AdDurationDays == 0 && args.LockedValue == 0 {
		return nil, domain.ErrInvalidUpdate
	}
	campAuth, vaultAuth, err := u.authorities(acc.Campaign, acc.Vault, args.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = external(acc.Advertiser, campAuth, vaultAuth); err != nil {
		return nil, err
	}

	var receipt domain.Receipt
	err = u.ledger.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := loadCampaign(ctx, tx, campAuth.Address)
		if err != nil {
			return err
		}
		if !acc.Advertiser.Equals(c.Advertiser) {
			return domain.ErrUnauthorizedAdvertiser
		}
		duration, err := domain.AddU64(c.AdDurationDays, args.AdDurationDays)
		if err != nil {
			return err
		}
		locked, err := domain.AddU64(c.LockedValue, args.LockedValue)
		if err != nil {
			return err
		}
		if _, err = domain.AddU64(c.RemainingValue, args.LockedValue); err != nil {
			return err
		}

		c.AdDurationDays = duration
		if args.LockedValue > 0 {
			have, err := tx.Balance(ctx, acc.Advertiser)
			if err != nil {
				return err
			}
			if have < args.LockedValue {
				return domain.ErrInsufficientFunds
			}
			if err = tx.Transfer(ctx, acc.Advertiser, vaultAuth.Address, args.LockedValue); err != nil {
				return err
			}
			balance, err := tx.Balance(ctx, vaultAuth.Address)
			if err != nil {
				return err
			}
			c.LockedValue = locked
			c.SyncRemaining(balance)
		}
		if err = storeCampaign(ctx, tx, campAuth.Address, c); err != nil {
			return err
		}
		receipt = u.receipt(domain.OpUpdateCampaign, args.CampaignID, args.LockedValue, vaultAuth.Address, 0)
		return tx.RecordReceipt(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
