package configs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Ledger configures the custody program and the ledger it runs on.
type Ledger struct {
	// Backend selects the ledger implementation: "postgres" or "memory".
	Backend string `env:"BACKEND" envDefault:"postgres"`
	// ProgramID is the identity campaign and vault addresses are derived
	// under.
	ProgramID solana.PublicKey `env:"PROGRAM_ID" envDefault:"FPVoBFkCPJ86DP3K6hsLfEzPhcRAx3REVZqJyGB1cCVX"`
	// Operator receives commission payouts.
	Operator solana.PublicKey `env:"OPERATOR,required,notEmpty"`
	// StrictClose refuses to close a campaign whose vault is not empty.
	StrictClose bool `env:"STRICT_CLOSE" envDefault:"true"`
	// Genesis lists initial balances as comma separated pubkey:lamports
	// pairs. Applied once at startup.
	Genesis []string `env:"GENESIS"`
}

// Allocation is a genesis balance.
type Allocation struct {
	Address  solana.PublicKey
	Lamports uint64
}

// Allocations parses Genesis.
func (c Ledger) Allocations() ([]Allocation, error) {
	out := make([]Allocation, 0, len(c.Genesis))
	for _, entry := range c.Genesis {
		addr, amount, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("genesis entry %q: want pubkey:lamports", entry)
		}
		key, err := solana.PublicKeyFromBase58(addr)
		if err != nil {
			return nil, fmt.Errorf("genesis entry %q: %w", entry, err)
		}
		lamports, err := strconv.ParseUint(amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("genesis entry %q: %w", entry, err)
		}
		out = append(out, Allocation{Address: key, Lamports: lamports})
	}
	return out, nil
}
