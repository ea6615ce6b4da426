package domain

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"slices"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	// MaxNameLen is the maximum campaign name length in bytes.
	MaxNameLen = 50
	// MaxPublishers bounds the publisher whitelist.
	MaxPublishers = 10

	// CampaignSpace is the maximum encoded size of a campaign record,
	// discriminator included.
	CampaignSpace = 8 + // discriminator
		8 + // campaign id
		4 + MaxNameLen + // name
		32 + // advertiser
		8 + // cost per click
		8 + // ad duration days
		4 + MaxPublishers*32 + // publishers
		8 + // locked value
		8 + // remaining value
		8 + // total clicks
		8 + // commission clicks
		8 + // transaction count
		8 // created at

	// FeePerTransaction is charged on commission settlement for every
	// publisher payout since the previous settlement, in lamports.
	FeePerTransaction uint64 = 5000

	rentBytesOverhead       = 128
	rentLamportsPerByteYear = 3480
	rentExemptionYears      = 2
)

// CampaignDiscriminator prefixes every encoded campaign record.
var CampaignDiscriminator = accountDiscriminator("Campaign")

func accountDiscriminator(name string) [8]byte {
	var d [8]byte
	sum := sha256.Sum256([]byte("account:" + name))
	copy(d[:], sum[:8])
	return d
}

// StorageDeposit returns the lamports a data-bearing account of the given
// size must hold to be exempt from rent on the host ledger.
func StorageDeposit(space int) uint64 {
	return uint64(rentBytesOverhead+space) * rentLamportsPerByteYear * rentExemptionYears
}

// Campaign is the persistent record of a pay-per-click campaign. Field order
// is the on-ledger layout and must not change.
type Campaign struct {
	CampaignID       uint64
	Name             string
	Advertiser       solana.PublicKey
	CostPerClick     uint64 // lamports per verified click
	AdDurationDays   uint64
	Publishers       []solana.PublicKey
	LockedValue      uint64 // cumulative value ever committed
	RemainingValue   uint64 // mirrors the vault balance
	TotalClicks      uint64
	CommissionClicks uint64 // clicks since the last commission payout
	TransactionCount uint64 // payouts since the last commission payout
	CreatedAt        int64  // unix seconds
}

// Validate checks the invariants every stored record must satisfy.
func (c *Campaign) Validate() error {
	if c.CostPerClick == 0 || c.LockedValue == 0 {
		return ErrInvalidAmount
	}
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := ValidatePublishers(c.Publishers); err != nil {
		return err
	}
	if c.RemainingValue > c.LockedValue {
		return fmt.Errorf("%w: remaining %d exceeds locked %d", ErrCorruptRecord, c.RemainingValue, c.LockedValue)
	}
	return nil
}

// ValidateName checks that name is non-empty and fits the record.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}

// ValidatePublishers checks the whitelist bounds.
func ValidatePublishers(publishers []solana.PublicKey) error {
	if len(publishers) == 0 {
		return ErrNoPublishers
	}
	if len(publishers) > MaxPublishers {
		return ErrTooManyPublishers
	}
	return nil
}

// HasPublisher reports whether id is whitelisted.
func (c *Campaign) HasPublisher(id solana.PublicKey) bool {
	return slices.Contains(c.Publishers, id)
}

// CreatedTime returns CreatedAt as a time.Time.
func (c *Campaign) CreatedTime() time.Time {
	return time.Unix(c.CreatedAt, 0).UTC()
}

// SyncRemaining sets RemainingValue to the authoritative vault balance. Value
// that reached the vault from outside the program is treated as committed.
func (c *Campaign) SyncRemaining(vaultBalance uint64) {
	c.RemainingValue = vaultBalance
	if c.RemainingValue > c.LockedValue {
		c.LockedValue = c.RemainingValue
	}
}

// MarshalBinary encodes the record in its on-ledger layout.
func (c *Campaign) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteBytes(CampaignDiscriminator[:], false); err != nil {
		return nil, err
	}
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode campaign: %w", err)
	}
	if buf.Len() > CampaignSpace {
		return nil, fmt.Errorf("encode campaign: %d bytes exceeds %d", buf.Len(), CampaignSpace)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a record produced by MarshalBinary.
func (c *Campaign) UnmarshalBinary(data []byte) error {
	if len(data) < len(CampaignDiscriminator) {
		return ErrCorruptRecord
	}
	if !bytes.Equal(data[:8], CampaignDiscriminator[:]) {
		return fmt.Errorf("%w: bad discriminator", ErrCorruptRecord)
	}
	dec := bin.NewBorshDecoder(data[8:])
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return nil
}
