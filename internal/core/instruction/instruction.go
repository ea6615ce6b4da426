// Package instruction encodes and decodes the custody program's instructions.
// Instruction data is an 8-byte discriminator followed by the Borsh encoding
// of the operation's arguments.
package instruction

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
)

// Discriminator identifies an instruction.
type Discriminator [8]byte

func discriminator(op domain.Operation) Discriminator {
	var d Discriminator
	sum := sha256.Sum256([]byte("global:" + string(op)))
	copy(d[:], sum[:8])
	return d
}

var discriminators = map[domain.Operation]Discriminator{
	domain.OpInitializeCampaign: discriminator(domain.OpInitializeCampaign),
	domain.OpPayPublisher:       discriminator(domain.OpPayPublisher),
	domain.OpPayCommission:      discriminator(domain.OpPayCommission),
	domain.OpUpdateCampaign:     discriminator(domain.OpUpdateCampaign),
	domain.OpCloseCampaign:      discriminator(domain.OpCloseCampaign),
	domain.OpCloseVault:         discriminator(domain.OpCloseVault),
}

// AccountCount is the number of accounts every instruction takes.
const AccountCount = 3

// DiscriminatorOf returns the discriminator of op.
func DiscriminatorOf(op domain.Operation) (Discriminator, bool) {
	d, ok := discriminators[op]
	return d, ok
}

// Encode serializes args behind the discriminator of op.
func Encode(op domain.Operation, args any) ([]byte, error) {
	d, ok := discriminators[op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInstruction, op)
	}
	body, err := borsh.Serialize(args)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}
	return append(d[:], body...), nil
}

// Decoded is an instruction whose data has been parsed. Args holds one of
// the port.*Args types matching Op.
type Decoded struct {
	Op   domain.Operation
	Args any
}

// Decode parses instruction data. On an argument error the returned Decoded
// still carries the operation its discriminator names.
func Decode(data []byte) (Decoded, error) {
	if len(data) < len(Discriminator{}) {
		return Decoded{}, fmt.Errorf("%w: data too short", domain.ErrInvalidInstruction)
	}
	var op domain.Operation
	for k, d := range discriminators {
		if bytes.Equal(data[:8], d[:]) {
			op = k
			break
		}
	}
	body := data[8:]
	var (
		args any
		err  error
	)
	switch op {
	case domain.OpInitializeCampaign:
		args, err = decodeArgs[port.InitializeCampaignArgs](body)
	case domain.OpPayPublisher:
		args, err = decodeArgs[port.PayPublisherArgs](body)
	case domain.OpPayCommission:
		args, err = decodeArgs[port.PayCommissionArgs](body)
	case domain.OpUpdateCampaign:
		args, err = decodeArgs[port.UpdateCampaignArgs](body)
	case domain.OpCloseCampaign:
		args, err = decodeArgs[port.CloseCampaignArgs](body)
	case domain.OpCloseVault:
		args, err = decodeArgs[port.CloseVaultArgs](body)
	default:
		return Decoded{}, fmt.Errorf("%w: unknown discriminator %x", domain.ErrInvalidInstruction, data[:8])
	}
	if err != nil {
		return Decoded{Op: op}, fmt.Errorf("%w: %v", domain.ErrInvalidInstruction, err)
	}
	return Decoded{Op: op, Args: args}, nil
}

// decodeArgs reads T from body. Length prefixes are checked against the
// bytes left, and the whole body must be consumed.
func decodeArgs[T any](body []byte) (T, error) {
	var a T
	dec := bin.NewBorshDecoder(body)
	if err := dec.Decode(&a); err != nil {
		return a, err
	}
	if dec.HasRemaining() {
		return a, fmt.Errorf("%d trailing bytes", dec.Remaining())
	}
	return a, nil
}

func derived(programID solana.PublicKey, campaignID uint64) (campaign, vault solana.PublicKey, err error) {
	campaign, _, err = pda.DeriveCampaignAddress(programID, campaignID)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("failed to derive campaign address: %w", err)
	}
	vault, _, err = pda.DeriveVaultAddress(programID, campaignID)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("failed to derive vault address: %w", err)
	}
	return campaign, vault, nil
}

func build(programID solana.PublicKey, op domain.Operation, args any, accounts []*solana.AccountMeta) (solana.Instruction, error) {
	data, err := Encode(op, args)
	if err != nil {
		return nil, err
	}
	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}

// BuildInitializeCampaign builds an initialize_campaign instruction signed by
// funder.
func BuildInitializeCampaign(programID, funder solana.PublicKey, args port.InitializeCampaignArgs) (solana.Instruction, error) {
	if funder.IsZero() {
		return nil, fmt.Errorf("funder public key is required")
	}
	campaign, vault, err := derived(programID, args.CampaignID)
	if err != nil {
		return nil, err
	}
	return build(programID, domain.OpInitializeCampaign, args, []*solana.AccountMeta{
		{PublicKey: campaign, IsWritable: true},
		{PublicKey: vault, IsWritable: true},
		{PublicKey: funder, IsSigner: true, IsWritable: true},
	})
}

// BuildPayPublisher builds a pay_publisher instruction.
func BuildPayPublisher(programID, publisher solana.PublicKey, args port.PayPublisherArgs) (solana.Instruction, error) {
	if publisher.IsZero() {
		return nil, fmt.Errorf("publisher public key is required")
	}
	campaign, vault, err := derived(programID, args.CampaignID)
	if err != nil {
		return nil, err
	}
	return build(programID, domain.OpPayPublisher, args, []*solana.AccountMeta{
		{PublicKey: campaign, IsWritable: true},
		{PublicKey: vault, IsWritable: true},
		{PublicKey: publisher, IsWritable: true},
	})
}

// BuildPayCommission builds a pay_commission instruction.
func BuildPayCommission(programID, operator solana.PublicKey, args port.PayCommissionArgs) (solana.Instruction, error) {
	if operator.IsZero() {
		return nil, fmt.Errorf("operator public key is required")
	}
	campaign, vault, err := derived(programID, args.CampaignID)
	if err != nil {
		return nil, err
	}
	return build(programID, domain.OpPayCommission, args, []*solana.AccountMeta{
		{PublicKey: campaign, IsWritable: true},
		{PublicKey: vault, IsWritable: true},
		{PublicKey: operator, IsWritable: true},
	})
}

// BuildUpdateCampaign builds an update_campaign instruction signed by the
// advertiser.
func BuildUpdateCampaign(programID, advertiser solana.PublicKey, args port.UpdateCampaignArgs) (solana.Instruction, error) {
	if advertiser.IsZero() {
		return nil, fmt.Errorf("advertiser public key is required")
	}
	campaign, vault, err := derived(programID, args.CampaignID)
	if err != nil {
		return nil, err
	}
	return build(programID, domain.OpUpdateCampaign, args, []*solana.AccountMeta{
		{PublicKey: campaign, IsWritable: true},
		{PublicKey: vault, IsWritable: true},
		{PublicKey: advertiser, IsSigner: true, IsWritable: true},
	})
}

// BuildCloseCampaign builds a close_campaign instruction signed by closer.
func BuildCloseCampaign(programID, closer solana.PublicKey, args port.CloseCampaignArgs) (solana.Instruction, error) {
	if closer.IsZero() {
		return nil, fmt.Errorf("closer public key is required")
	}
	campaign, vault, err := derived(programID, args.CampaignID)
	if err != nil {
		return nil, err
	}
	return build(programID, domain.OpCloseCampaign, args, []*solana.AccountMeta{
		{PublicKey: campaign, IsWritable: true},
		{PublicKey: vault},
		{PublicKey: closer, IsSigner: true, IsWritable: true},
	})
}

// BuildCloseVault builds a close_vault instruction signed by the advertiser.
func BuildCloseVault(programID, advertiser solana.PublicKey, args port.CloseVaultArgs) (solana.Instruction, error) {
	if advertiser.IsZero() {
		return nil, fmt.Errorf("advertiser public key is required")
	}
	campaign, vault, err := derived(programID, args.CampaignID)
	if err != nil {
		return nil, err
	}
	return build(programID, domain.OpCloseVault, args, []*solana.AccountMeta{
		{PublicKey: campaign},
		{PublicKey: vault, IsWritable: true},
		{PublicKey: advertiser, IsSigner: true, IsWritable: true},
	})
}
