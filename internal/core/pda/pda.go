// Package pda derives the program-owned addresses of campaign records and
// vaults, and the authority proofs that let the program move value out of
// them. Everything here is a pure function of the seeds and the program id.
package pda

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/domain"
)

const (
	CampaignSeed = "campaign"
	VaultSeed    = "vault"
)

func idBytes(campaignID uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, campaignID)
	return b
}

// CampaignSeeds returns the seeds of the campaign record account.
func CampaignSeeds(campaignID uint64) [][]byte {
	return [][]byte{[]byte(CampaignSeed), idBytes(campaignID)}
}

// VaultSeeds returns the seeds of the custody vault account.
func VaultSeeds(campaignID uint64) [][]byte {
	return [][]byte{[]byte(VaultSeed), idBytes(campaignID)}
}

// DeriveCampaignAddress returns the record address and its bump seed.
func DeriveCampaignAddress(programID solana.PublicKey, campaignID uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(CampaignSeeds(campaignID), programID)
}

// DeriveVaultAddress returns the vault address and its bump seed.
func DeriveVaultAddress(programID solana.PublicKey, campaignID uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(VaultSeeds(campaignID), programID)
}

// Authority proves that Address is derived from Seeds and Bump under
// ProgramID, which entitles the program to debit it.
type Authority struct {
	ProgramID solana.PublicKey
	Address   solana.PublicKey
	Seeds     [][]byte
	Bump      uint8
}

// SignerSeeds returns the seeds with the bump appended, as the host ledger
// expects them for a signed transfer.
func (a Authority) SignerSeeds() [][]byte {
	seeds := make([][]byte, 0, len(a.Seeds)+1)
	seeds = append(seeds, a.Seeds...)
	return append(seeds, []byte{a.Bump})
}

// Verify recomputes the address from the signer seeds.
func (a Authority) Verify() error {
	addr, err := solana.CreateProgramAddress(a.SignerSeeds(), a.ProgramID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAccountMismatch, err)
	}
	if !addr.Equals(a.Address) {
		return domain.ErrAccountMismatch
	}
	return nil
}

func newAuthority(programID solana.PublicKey, seeds [][]byte) (Authority, error) {
	addr, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return Authority{}, fmt.Errorf("derive address: %w", err)
	}
	return Authority{ProgramID: programID, Address: addr, Seeds: seeds, Bump: bump}, nil
}

// CampaignAuthority returns the authority over a campaign record account.
func CampaignAuthority(programID solana.PublicKey, campaignID uint64) (Authority, error) {
	return newAuthority(programID, CampaignSeeds(campaignID))
}

// VaultAuthority returns the authority over a campaign vault.
func VaultAuthority(programID solana.PublicKey, campaignID uint64) (Authority, error) {
	return newAuthority(programID, VaultSeeds(campaignID))
}

// Expect re-derives the authority for seeds and checks that the
// caller-supplied address matches it.
func Expect(provided, programID solana.PublicKey, seeds [][]byte) (Authority, error) {
	auth, err := newAuthority(programID, seeds)
	if err != nil {
		return Authority{}, err
	}
	if !provided.Equals(auth.Address) {
		return Authority{}, fmt.Errorf("%w: got %s, want %s", domain.ErrAccountMismatch, provided, auth.Address)
	}
	return auth, nil
}
