package usecase

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/instruction"
	"adcustody/internal/core/port"
)

// Execute decodes a program instruction, checks its account list and signer
// flags and runs the matching operation. Signatures themselves are verified
// by the host network before an instruction reaches the program.
func (u *CampaignUseCase) Execute(ctx context.Context, ix solana.Instruction) (*domain.Receipt, error) {
	dec, metas, err := u.decode(ix)
	if err != nil {
		op := dec.Op
		if op == "" {
			op = opUnknown
		}
		return u.finish(op, campaignIDOf(dec.Args), nil, err)
	}
	campaign, vault, third := metas[0], metas[1], metas[2]

	reject := func(err error) (*domain.Receipt, error) {
		return u.finish(dec.Op, campaignIDOf(dec.Args), nil, err)
	}
	switch args := dec.Args.(type) {
	case port.InitializeCampaignArgs:
		if err = requireWritable(campaign, vault); err != nil {
			return reject(err)
		}
		if err = requireSigner(third); err != nil {
			return reject(err)
		}
		return u.InitializeCampaign(ctx, port.InitializeCampaignAccounts{
			Campaign: campaign.PublicKey, Vault: vault.PublicKey, Funder: third.PublicKey,
		}, args)
	case port.PayPublisherArgs:
		if err = requireWritable(campaign, vault, third); err != nil {
			return reject(err)
		}
		return u.PayPublisher(ctx, port.PayPublisherAccounts{
			Campaign: campaign.PublicKey, Vault: vault.PublicKey, Publisher: third.PublicKey,
		}, args)
	case port.PayCommissionArgs:
		if err = requireWritable(campaign, vault, third); err != nil {
			return reject(err)
		}
		return u.PayCommission(ctx, port.PayCommissionAccounts{
			Campaign: campaign.PublicKey, Vault: vault.PublicKey, Operator: third.PublicKey,
		}, args)
	case port.UpdateCampaignArgs:
		if err = requireWritable(campaign, vault); err != nil {
			return reject(err)
		}
		if err = requireSigner(third); err != nil {
			return reject(err)
		}
		return u.UpdateCampaign(ctx, port.UpdateCampaignAccounts{
			Campaign: campaign.PublicKey, Vault: vault.PublicKey, Advertiser: third.PublicKey,
		}, args)
	case port.CloseCampaignArgs:
		if err = requireWritable(campaign); err != nil {
			return reject(err)
		}
		if err = requireSigner(third); err != nil {
			return reject(err)
		}
		return u.CloseCampaign(ctx, port.CloseCampaignAccounts{
			Campaign: campaign.PublicKey, Vault: vault.PublicKey, Closer: third.PublicKey,
		}, args)
	case port.CloseVaultArgs:
		if err = requireWritable(vault); err != nil {
			return reject(err)
		}
		if err = requireSigner(third); err != nil {
			return reject(err)
		}
		return u.CloseVault(ctx, port.CloseVaultAccounts{
			Campaign: campaign.PublicKey, Vault: vault.PublicKey, Advertiser: third.PublicKey,
		}, args)
	default:
		return reject(fmt.Errorf("%w: unsupported arguments %T", domain.ErrInvalidInstruction, dec.Args))
	}
}

// opUnknown labels instructions whose discriminator could not be read.
const opUnknown domain.Operation = "unknown"

// decode checks the program id and account list of ix and parses its data.
// The returned Decoded names the operation whenever the discriminator is known.
func (u *CampaignUseCase) decode(ix solana.Instruction) (instruction.Decoded, []*solana.AccountMeta, error) {
	if !ix.ProgramID().Equals(u.cfg.ProgramID) {
		return instruction.Decoded{}, nil, fmt.Errorf("%w: program %s", domain.ErrInvalidInstruction, ix.ProgramID())
	}
	data, err := ix.Data()
	if err != nil {
		return instruction.Decoded{}, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInstruction, err)
	}
	dec, err := instruction.Decode(data)
	if err != nil {
		return dec, nil, err
	}
	metas := ix.Accounts()
	if len(metas) != instruction.AccountCount {
		return dec, nil, fmt.Errorf("%w: want %d accounts, got %d", domain.ErrInvalidInstruction, instruction.AccountCount, len(metas))
	}
	for i, m := range metas {
		if m == nil {
			return dec, nil, fmt.Errorf("%w: account %d missing", domain.ErrInvalidInstruction, i)
		}
	}
	return dec, metas, nil
}

func campaignIDOf(args any) uint64 {
	switch a := args.(type) {
	case port.InitializeCampaignArgs:
		return a.CampaignID
	case port.PayPublisherArgs:
		return a.CampaignID
	case port.PayCommissionArgs:
		return a.CampaignID
	case port.UpdateCampaignArgs:
		return a.CampaignID
	case port.CloseCampaignArgs:
		return a.CampaignID
	case port.CloseVaultArgs:
		return a.CampaignID
	}
	return 0
}

func requireSigner(m *solana.AccountMeta) error {
	if !m.IsSigner {
		return fmt.Errorf("%w: %s", domain.ErrMissingSignature, m.PublicKey)
	}
	return requireWritable(m)
}

func requireWritable(metas ...*solana.AccountMeta) error {
	for _, m := range metas {
		if !m.IsWritable {
			return fmt.Errorf("%w: account %s must be writable", domain.ErrInvalidInstruction, m.PublicKey)
		}
	}
	return nil
}
