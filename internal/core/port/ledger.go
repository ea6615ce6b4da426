package port

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"

	"adcustody/internal/core/domain"
	"adcustody/internal/core/pda"
)

// Ledger is the host ledger the custody program runs on. It is an outbound
// port in hexagonal architecture. Implementations must serialize units of
// work touching the same accounts.
type Ledger interface {
	// Atomic runs fn as one unit of work. If fn returns an error every
	// effect performed through tx is discarded and the error is returned
	// unchanged.
	Atomic(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error

	// Balance returns the lamports held by addr outside of any unit of work.
	Balance(ctx context.Context, addr solana.PublicKey) (uint64, error)

	// LoadRecord returns the data of a record account, or nil if it does
	// not exist.
	LoadRecord(ctx context.Context, addr solana.PublicKey) ([]byte, error)

	// Receipts returns the receipts of a campaign recorded in [from, to].
	Receipts(ctx context.Context, campaignID uint64, from, to time.Time) ([]domain.Receipt, error)
}

// LedgerTx is the view of the ledger inside a unit of work.
type LedgerTx interface {
	// Balance returns the lamports held by addr; zero for unknown accounts.
	Balance(ctx context.Context, addr solana.PublicKey) (uint64, error)
	// Transfer moves lamports out of an account whose owner signed the
	// request. It fails with domain.ErrInsufficientFunds when from cannot
	// cover amount.
	Transfer(ctx context.Context, from, to solana.PublicKey, amount uint64) error
	// TransferSigned moves lamports out of a program-derived account. The
	// authority must verify against the source address.
	TransferSigned(ctx context.Context, from pda.Authority, to solana.PublicKey, amount uint64) error

	// LoadRecord returns record data at addr, or nil if there is none.
	LoadRecord(ctx context.Context, addr solana.PublicKey) ([]byte, error)
	// StoreRecord creates or replaces record data at addr.
	StoreRecord(ctx context.Context, addr solana.PublicKey, data []byte) error
	// DeleteRecord removes record data at addr.
	DeleteRecord(ctx context.Context, addr solana.PublicKey) error

	// RecordReceipt appends r to the journal.
	RecordReceipt(ctx context.Context, r domain.Receipt) error
}
