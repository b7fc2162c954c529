package types

import (
	"fmt"
	"time"

	"github.com/mr-tron/base58"
)

// Slot is the position of a block in the ledger, counted from genesis.
type Slot uint64

// Hash is a 32 byte digest, rendered base58 like every other chain-facing
// identifier.
type Hash [32]byte

// PublicKey identifies an account.
type PublicKey [32]byte

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

// HashFromString decodes the base58 text form of a hash.
func HashFromString(s string) (Hash, error) {
	var h Hash
	b, err := base58.Decode(s)
	if err != nil {
		return h, fmt.Errorf("%w: %s", ErrInvalidHash, s)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHash, len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// Anchor is a verified (slot, hash) pair certifying the trusted starting
// point for incremental replay.
type Anchor struct {
	Slot Slot
	Hash Hash
}

func (a Anchor) String() string {
	return fmt.Sprintf("(%d, %s)", a.Slot, a.Hash.String())
}

// GenesisConfig holds the read-only chain-origin parameters. It is owned by
// the caller and never mutated by the bootstrap pipeline.
type GenesisConfig struct {
	ChainID      string
	CreationTime time.Time
	Hash         Hash
}

// TransactionStatus is the payload emitted on the optional transaction
// status sink during replay. The bootstrap pipeline forwards the sink to
// the replayer untouched and never reads from it.
type TransactionStatus struct {
	Slot      Slot
	Signature []byte
	Err       error
}

// BlockMeta is the payload emitted on the optional block metadata sink
// during replay.
type BlockMeta struct {
	Slot       Slot
	ParentSlot Slot
	Hash       Hash
}
