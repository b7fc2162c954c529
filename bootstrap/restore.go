package bootstrap

import (
	"github.com/ozonechain/ozone/logging"
	"github.com/ozonechain/ozone/metrics"
	"github.com/ozonechain/ozone/types"
)

// loadFromSnapshot decodes the discovered archive, proves its claim
// against the decoded content and catches up the remaining ledger entries
// from the verified anchor. It never returns on a verification failure: an
// archive that cannot be decoded, or decodes to a different identity than
// it claims, must not be silently replaced by a genesis replay - that
// would either mask disk corruption or desynchronise the node from history
// it previously vouched for.
func (e *Engine) loadFromSnapshot(
	genesis *types.GenesisConfig,
	store LedgerStore,
	accountPaths []string,
	shrinkPaths []string,
	snapCfg *types.SnapshotConfig,
	descriptor *types.ArchiveDescriptor,
	opts types.ProcessOptions,
	sinks *StatusSinks,
) (*types.LoadedState, error) {
	defer metrics.StartBootstrap("snapshot", "restore")()

	e.log.Info("Loading snapshot archive",
		logging.String("archive", descriptor.Path),
		logging.Uint64("claimed-slot", uint64(descriptor.Slot)),
		logging.String("claimed-hash", descriptor.Hash.String()),
	)

	// Decoding into nothing is meaningless and must not be mistaken for
	// "no snapshot found".
	if len(accountPaths) == 0 {
		metrics.BootstrapAttempt("snapshot", "fatal")
		e.fatalf("Account paths not present when booting from snapshot",
			logging.String("archive", descriptor.Path),
		)
	}

	state, err := e.decoder.Decode(DecodeRequest{
		AccountPaths: accountPaths,
		StagingPath:  snapCfg.StagingPath,
		ArchivePath:  descriptor.Path,
		Format:       descriptor.Format,
		Genesis:      genesis,
		Options:      opts,
	})
	if err != nil {
		metrics.BootstrapAttempt("snapshot", "fatal")
		e.fatalf("Snapshot archive could not be decoded",
			logging.String("archive", descriptor.Path),
			logging.Strings("account-paths", accountPaths),
			logging.Error(err),
		)
	}

	if len(shrinkPaths) > 0 {
		// Purely informational for the later compaction phase.
		state.SetShrinkPaths(shrinkPaths)
	}

	if opts.FullRehashVerification {
		// Expensive full index walk, manual verification workflows only.
		// Divergence is reported through the claim comparison below.
		recomputed := state.RecalculateAccountsHash()
		e.log.Info("Recomputed accounts hash over full index",
			logging.String("recomputed-hash", recomputed.String()),
		)
	}

	slot, hash := state.Slot(), state.AccountsHash()
	if slot != descriptor.Slot || hash != descriptor.Hash {
		metrics.BootstrapAttempt("snapshot", "fatal")
		// Log both identities for the postmortem; proceed with neither.
		e.fatalf("Snapshot claim does not match decoded content",
			logging.String("archive", descriptor.Path),
			logging.Uint64("claimed-slot", uint64(descriptor.Slot)),
			logging.String("claimed-hash", descriptor.Hash.String()),
			logging.Uint64("decoded-slot", uint64(slot)),
			logging.String("decoded-hash", hash.String()),
		)
	}

	e.log.Info("Snapshot claim verified",
		logging.Uint64("slot", uint64(slot)),
		logging.String("hash", hash.String()),
	)
	metrics.SetSnapshotSlot(uint64(slot))

	// Catch up the entries newer than the verified anchor.
	result, err := e.replayer.ReplayFromRoot(store, state, opts, sinks)
	if err != nil {
		metrics.BootstrapAttempt("snapshot", "replay-error")
		return nil, asReplayError(err)
	}

	metrics.BootstrapAttempt("snapshot", "ok")
	return &types.LoadedState{
		Forks:          result.Forks,
		LeaderSchedule: result.LeaderSchedule,
		VerifiedAnchor: &types.Anchor{Slot: slot, Hash: hash},
	}, nil
}
