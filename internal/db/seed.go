package db

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/config/configs"
)

// Funder credits lamports to an account outside of any program operation.
type Funder interface {
	Balance(ctx context.Context, addr solana.PublicKey) (uint64, error)
	Fund(ctx context.Context, addr solana.PublicKey, lamports uint64) error
}

// Seed applies genesis allocations. An account that already holds lamports
// is left alone, so restarting the service does not mint value twice.
func Seed(ctx context.Context, ledger Funder, allocations []configs.Allocation) (int, error) {
	var funded int
	for _, a := range allocations {
		have, err := ledger.Balance(ctx, a.Address)
		if err != nil {
			return funded, err
		}
		if have > 0 {
			continue
		}
		if err = ledger.Fund(ctx, a.Address, a.Lamports); err != nil {
			return funded, fmt.Errorf("fund %s: %w", a.Address, err)
		}
		funded++
	}
	return funded, nil
}
