package pda

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"adcustody/internal/core/domain"
)

func TestDeriveAddressesAreDeterministic(t *testing.T) {
	program := solana.NewWallet().PublicKey()

	c1, b1, err := DeriveCampaignAddress(program, 7)
	require.NoError(t, err)
	c2, b2, err := DeriveCampaignAddress(program, 7)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
	require.Equal(t, b1, b2)

	v, _, err := DeriveVaultAddress(program, 7)
	require.NoError(t, err)
	require.NotEqual(t, c1, v)

	other, _, err := DeriveCampaignAddress(program, 8)
	require.NoError(t, err)
	require.NotEqual(t, c1, other)

	foreign, _, err := DeriveCampaignAddress(solana.NewWallet().PublicKey(), 7)
	require.NoError(t, err)
	require.NotEqual(t, c1, foreign)
}

func TestSeedsEncodeIDLittleEndian(t *testing.T) {
	seeds := VaultSeeds(0x0102030405060708)
	require.Equal(t, []byte(VaultSeed), seeds[0])
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, seeds[1])
}

func TestAuthorityVerify(t *testing.T) {
	program := solana.NewWallet().PublicKey()
	auth, err := VaultAuthority(program, 3)
	require.NoError(t, err)
	require.NoError(t, auth.Verify())

	addr, bump, err := DeriveVaultAddress(program, 3)
	require.NoError(t, err)
	require.Equal(t, addr, auth.Address)
	require.Equal(t, bump, auth.Bump)
	require.Len(t, auth.SignerSeeds(), 3)

	forged := auth
	forged.Address = solana.NewWallet().PublicKey()
	require.ErrorIs(t, forged.Verify(), domain.ErrAccountMismatch)
}

func TestExpect(t *testing.T) {
	program := solana.NewWallet().PublicKey()
	campaign, _, err := DeriveCampaignAddress(program, 1)
	require.NoError(t, err)

	auth, err := Expect(campaign, program, CampaignSeeds(1))
	require.NoError(t, err)
	require.Equal(t, campaign, auth.Address)

	_, err = Expect(campaign, program, CampaignSeeds(2))
	require.ErrorIs(t, err, domain.ErrAccountMismatch)
}
