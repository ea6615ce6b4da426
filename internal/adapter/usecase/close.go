package usecase

import (
	"context"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/port"
)

// CloseCampaign deletes the campaign record and returns the lamports held by
// the record account to the closer, who must be the advertiser or the
// operator. With strict closing the vault has to be drained first, otherwise
// its value would be stranded without a record to authenticate the
// advertiser.
func (u *CampaignUseCase) CloseCampaign(ctx context.Context, acc port.CloseCampaignAccounts, args port.CloseCampaignArgs) (*domain.Receipt, error) {
	r, err := u.closeCampaign(ctx, acc, args)
	return u.finish(domain.OpCloseCampaign, args.CampaignID, r, err)
}

func (u *CampaignUseCase) closeCampaign(ctx context.Context, acc port.CloseCampaignAccounts, args port.CloseCampaignArgs) (*domain.Receipt, error) {
	campAuth, vaultAuth, err := u.authorities(acc.Campaign, acc.Vault, args.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = external(acc.Closer, campAuth, vaultAuth); err != nil {
		return nil, err
	}

	var receipt domain.Receipt
	err = u.ledger.Atomic(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := loadCampaign(ctx, tx, campAuth.Address)
		if err != nil {
			return err
		}
		if !acc.Closer.Equals(c.Advertiser) && !acc.Closer.Equals(u.cfg.Operator) {
			return domain.ErrUnauthorizedCloser
		}
		if u.cfg.StrictClose {
			vaultBalance, err := tx.Balance(ctx, vaultAuth.Address)
			if err != nil {
				return err
			}
			if vaultBalance > 0 {
				return domain.ErrVaultNotEmpty
			}
		}
		deposit, err := tx.Balance(ctx, campAuth.Address)
		if err != nil {
			return err
		}
		if deposit > 0 {
			if err = tx.TransferSigned(ctx, campAuth, acc.Closer, deposit); err != nil {
				return err
			}
		}
		if err = tx.DeleteRecord(ctx, campAuth.Address); err != nil {
			return err
		}
		receipt = u.receipt(domain.OpCloseCampaign, args.CampaignID, deposit, acc.Closer, 0)
		return tx.RecordReceipt(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// CloseVault transfers the whole vault balance to the advertiser. The record
// is kept, with a remaining value of zero, until CloseCampaign.
func (u *CampaignUseCase) CloseVault(ctx context.Context, acc port.CloseVaultAccounts, args port.CloseVaultArgs) (*domain.Receipt, error) {
	r, err := u.closeVault(ctx, acc, args)
	return u.finish(domain.OpCloseVault, args.CampaignID, r, err)
}

func (u *CampaignUseCase) closeVault(ctx context.Context, acc port.CloseVaultAccounts, args port.CloseVaultArgs) (*domain.Receipt, error) {
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
			return domain.ErrUnauthorizedCloser
		}
		balance, err := tx.Balance(ctx, vaultAuth.Address)
		if err != nil {
			return err
		}
		if balance == 0 {
			return domain.ErrNothingToWithdraw
		}
		if err = tx.TransferSigned(ctx, vaultAuth, acc.Advertiser, balance); err != nil {
			return err
		}
		c.RemainingValue = 0
		if err = storeCampaign(ctx, tx, campAuth.Address, c); err != nil {
			return err
		}
		receipt = u.receipt(domain.OpCloseVault, args.CampaignID, balance, acc.Advertiser, 0)
		return tx.RecordReceipt(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
