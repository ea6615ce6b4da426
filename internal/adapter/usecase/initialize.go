package usecase

import (
	"context"
	"slices"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/port"
)

// InitializeCampaign creates the campaign record and funds the vault with the
// initial locked value. The funder additionally pays the storage deposit of
// the record account. Initializing an id that already has a record fails
// with domain.ErrCampaignExists; counters of a live campaign are never reset.
// A vault that already holds value without a record fails with
// domain.ErrVaultNotEmpty, since that value may belong to a closed campaign.
func (u *CampaignUseCase) InitializeCampaign(ctx context.Context, acc port.InitializeCampaignAccounts, args port.InitializeCampaignArgs) (*domain.Receipt, error) {
	r, err := u.initializeCampaign(ctx, acc, args)
	return u.finish(domain.OpInitializeCampaign, args.CampaignID, r, err)
}

func (u *CampaignUseCase) initializeCampaign(ctx context.Context, acc port.InitializeCampaignAccounts, args port.InitializeCampaignArgs) (*domain.Receipt, error) {
	if args.LockedValue == 0 || args.CostPerClick == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.ValidateName(args.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePublishers(args.Publishers); err != nil {
		return nil, err
	}
	campAuth, vaultAuth, err := u.authorities(acc.Campaign, acc.Vault, args.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = external(acc.Funder, campAuth, vaultAuth); err != nil {
		return nil, err
	}
	if err = external(args.Advertiser, campAuth, vaultAuth); err != nil {
		return nil, err
	}
	for _, p := range args.Publishers {
		if err = external(p, campAuth, vaultAuth); err != nil {
			return nil, err
		}
	}

	deposit := domain.StorageDeposit(domain.CampaignSpace)
	need, err := domain.AddU64(args.LockedValue, deposit)
	if err != nil {
		return nil, err
	}

	var receipt domain.Receipt
	err = u.ledger.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		existing, err := tx.LoadRecord(ctx, campAuth.Address)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrCampaignExists
		}
		residual, err := tx.Balance(ctx, vaultAuth.Address)
		if err != nil {
			return err
		}
		if residual > 0 {
			return domain.ErrVaultNotEmpty
		}
		have, err := tx.Balance(ctx, acc.Funder)
		if err != nil {
			return err
		}
		if have < need {
			return domain.ErrInsufficientFunds
		}

		if err = tx.Transfer(ctx, acc.Funder, campAuth.Address, deposit); err != nil {
			return err
		}
		if err = tx.Transfer(ctx, acc.Funder, vaultAuth.Address, args.LockedValue); err != nil {
			return err
		}
		c := &domain.Campaign{
			CampaignID:     args.CampaignID,
			Name:           args.Name,
			Advertiser:     args.Advertiser,
			CostPerClick:   args.CostPerClick,
			AdDurationDays: args.AdDurationDays,
			Publishers:     slices.Clone(args.Publishers),
			LockedValue:    args.LockedValue,
			RemainingValue: args.LockedValue,
			CreatedAt:      u.unix(),
		}
		if err = storeCampaign(ctx, tx, campAuth.Address, c); err != nil {
			return err
		}
		receipt = u.receipt(domain.OpInitializeCampaign, args.CampaignID, args.LockedValue, vaultAuth.Address, 0)
		return tx.RecordReceipt(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
