package bootstrap

import (
	"github.com/ozonechain/ozone/logging"
	"github.com/ozonechain/ozone/metrics"
	"github.com/ozonechain/ozone/types"
)

// loadFromGenesis replays the whole ledger history from the origin slot.
// No cross-check against an external claim is needed here, replay from
// genesis is itself the source of truth. Failures concern ledger content,
// not environment trust, so they come back as structured errors and the
// caller decides whether to retry.
func (e *Engine) loadFromGenesis(
	genesis *types.GenesisConfig,
	store LedgerStore,
	accountPaths []string,
	opts types.ProcessOptions,
	sinks *StatusSinks,
) (*types.LoadedState, error) {
	defer metrics.StartBootstrap("genesis", "replay")()

	e.log.Info("Processing ledger from genesis",
		logging.String("chain-id", genesis.ChainID),
		logging.Uint64("tip-slot", uint64(store.TipSlot())),
	)

	result, err := e.replayer.ReplayFromGenesis(genesis, store, accountPaths, opts, sinks)
	if err != nil {
		metrics.BootstrapAttempt("genesis", "replay-error")
		return nil, asReplayError(err)
	}

	metrics.BootstrapAttempt("genesis", "ok")
	return &types.LoadedState{
		Forks:          result.Forks,
		LeaderSchedule: result.LeaderSchedule,
	}, nil
}
