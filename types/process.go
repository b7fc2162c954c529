package types

// AccountIndex selects a secondary index the account store maintains while
// loading accounts.
type AccountIndex int

const (
	AccountIndexProgram AccountIndex = iota
	AccountIndexOwner
	AccountIndexMint
)

func (i AccountIndex) String() string {
	switch i {
	case AccountIndexProgram:
		return "program"
	case AccountIndexOwner:
		return "owner"
	case AccountIndexMint:
		return "mint"
	default:
		return "unknown"
	}
}

// ProcessOptions is the immutable bundle of options controlling ledger
// replay behaviour. It is supplied by the caller and never mutated by the
// bootstrap pipeline.
type ProcessOptions struct {
	// FrozenAccounts are accounts whose content must not change during
	// replay.
	FrozenAccounts []PublicKey
	// DebugKeys restricts verbose replay tracing to the given accounts.
	DebugKeys []PublicKey
	// BPFJIT enables the JIT compiled builtins during replay.
	BPFJIT bool
	// AccountIndexes are the secondary indexes the account store should
	// maintain while loading.
	AccountIndexes []AccountIndex
	// AccountsDBCachingEnabled turns on the account store read cache.
	AccountsDBCachingEnabled bool
	// LimitLoadSlotCount caps how many slots are loaded from a snapshot,
	// nil for no limit. Used by pruning/debugging workflows.
	LimitLoadSlotCount *uint64
	// ShrinkRatio is the occupancy ratio below which account storages are
	// candidates for compaction.
	ShrinkRatio float64
	// FullRehashVerification forces an eager recompute of the accounts
	// hash over the whole index after decoding a snapshot. Expensive, for
	// manual verification workflows only; it does not gate bootstrap
	// success on its own.
	FullRehashVerification bool
}
