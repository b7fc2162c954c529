package bootstrap

import (
	"errors"
	"os"

	vgfs "github.com/ozonechain/ozone/libs/fs"
	"github.com/ozonechain/ozone/logging"
	"github.com/ozonechain/ozone/types"
)

// Locator discovers snapshot archives under an archive output directory
// and returns the claim of the best one. Selection must be monotonic in
// slot; ordering beyond slot is the locator's concern and stays pluggable.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/locator_mock.go -package mocks github.com/ozonechain/ozone/bootstrap Locator
type Locator interface {
	// HighestArchive returns the archive claiming the highest slot, or
	// types.ErrNoSnapshotArchive when none is discoverable.
	HighestArchive(dir string) (*types.ArchiveDescriptor, error)
}

// DecodeRequest carries everything the decode collaborator needs to
// rebuild account state from a snapshot archive.
type DecodeRequest struct {
	// AccountPaths are the directories backing account storage. Must be
	// non-empty, checked by the engine before any decode attempt.
	AccountPaths []string
	// StagingPath is the freshly reset scratch directory.
	StagingPath string
	// ArchivePath locates the archive file to decode.
	ArchivePath string
	// Format of the archive container.
	Format types.ArchiveFormat
	// Genesis is used to cross-validate chain identity during decode.
	Genesis *types.GenesisConfig
	// Options controlling the account store while loading.
	Options types.ProcessOptions
}

// Decoder rebuilds a sealed state from a snapshot archive. The concrete
// implementation owns the serialization format and any parallelism.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/decoder_mock.go -package mocks github.com/ozonechain/ozone/bootstrap Decoder
type Decoder interface {
	Decode(req DecodeRequest) (types.State, error)
}

// LedgerStore is the read-only handle to the sequential ledger entry
// store.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/ledger_store_mock.go -package mocks github.com/ozonechain/ozone/bootstrap LedgerStore
type LedgerStore interface {
	// TipSlot is the highest slot the store holds entries for.
	TipSlot() types.Slot
}

// ReplayResult is what the replay collaborator hands back once it has
// processed ledger entries.
type ReplayResult struct {
	Forks          *types.Forks
	LeaderSchedule *types.LeaderSchedule
}

// Replayer processes ledger entries into account state, either the whole
// history from genesis or the entries newer than a verified root.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/replayer_mock.go -package mocks github.com/ozonechain/ozone/bootstrap Replayer
type Replayer interface {
	ReplayFromGenesis(genesis *types.GenesisConfig, store LedgerStore, accountPaths []string, opts types.ProcessOptions, sinks *StatusSinks) (*ReplayResult, error)
	ReplayFromRoot(store LedgerStore, root types.State, opts types.ProcessOptions, sinks *StatusSinks) (*ReplayResult, error)
}

// StatusSinks are the optional output channels forwarded to the replay
// collaborator untouched. The engine never reads from or writes to them.
type StatusSinks struct {
	TransactionStatus chan<- *types.TransactionStatus
	BlockMeta         chan<- *types.BlockMeta
}

// FatalHook handles conditions under which the node must not keep running:
// missing account paths, an undecodable archive, a staging directory that
// cannot be created, a claim the decoded content does not reproduce. The
// hook must not return; the default logs and exits the process.
type FatalHook func(msg string, fields ...logging.Field)

// Engine is the ledger bootstrap pipeline. At node start it decides
// between restoring from the best discoverable snapshot archive and
// replaying the full history from genesis, and refuses to hand back state
// it cannot prove matches its claimed identity.
//
// The engine is single threaded and blocking; cancellation and timeouts
// are the caller's concern.
type Engine struct {
	Config

	log      *logging.Logger
	locator  Locator
	decoder  Decoder
	replayer Replayer
	fatal    FatalHook
}

// New returns a bootstrap engine wired to its collaborators.
func New(log *logging.Logger, cfg Config, locator Locator, decoder Decoder, replayer Replayer) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	e := &Engine{
		Config:   cfg,
		log:      log,
		locator:  locator,
		decoder:  decoder,
		replayer: replayer,
	}
	e.fatal = func(msg string, fields ...logging.Field) {
		log.Fatal(msg, fields...)
	}
	return e
}

// SetFatalHook replaces the process-terminating handler. Production keeps
// the default; tests install a recording hook so fatal paths stay
// unit-testable.
func (e *Engine) SetFatalHook(hook FatalHook) {
	if hook != nil {
		e.fatal = hook
	}
}

// fatalf never returns. The panic is a backstop for replacement hooks that
// do: no LoadedState may be observable past a fatal condition.
func (e *Engine) fatalf(msg string, fields ...logging.Field) {
	e.fatal(msg, fields...)
	panic(msg)
}

// Load selects the bootstrap strategy and runs it.
//
// With a snapshot configuration the staging directory is reset, the best
// archive discovered and restored; without one, or when no archive is
// discoverable, the ledger is replayed from genesis. Recoverable replay
// failures come back as *types.ReplayError; environment failures go
// through the fatal hook and terminate the process.
func (e *Engine) Load(
	genesis *types.GenesisConfig,
	store LedgerStore,
	accountPaths []string,
	shrinkPaths []string,
	snapCfg *types.SnapshotConfig,
	opts types.ProcessOptions,
	sinks *StatusSinks,
) (*types.LoadedState, error) {
	if snapCfg == nil {
		e.log.Info("Snapshots disabled; will load from genesis")
		return e.loadFromGenesis(genesis, store, accountPaths, opts, sinks)
	}

	e.log.Info("Initialising snapshot staging path",
		logging.String("staging-path", snapCfg.StagingPath),
	)
	// Staging content is never trusted across restarts.
	_ = os.RemoveAll(snapCfg.StagingPath)
	if err := vgfs.EnsureDir(snapCfg.StagingPath); err != nil {
		// A staging area we cannot create now would also fail during live
		// snapshot writes; surface the misconfiguration at boot.
		e.fatalf("Could not create snapshot staging directory",
			logging.String("staging-path", snapCfg.StagingPath),
			logging.Error(err),
		)
	}

	descriptor, err := e.locator.HighestArchive(snapCfg.ArchiveOutputPath)
	if err != nil {
		if errors.Is(err, types.ErrNoSnapshotArchive) {
			// Expected on first ever boot.
			e.log.Info("No snapshot archive available; will load from genesis",
				logging.String("archive-path", snapCfg.ArchiveOutputPath),
			)
			return e.loadFromGenesis(genesis, store, accountPaths, opts, sinks)
		}
		e.fatalf("Could not discover snapshot archives",
			logging.String("archive-path", snapCfg.ArchiveOutputPath),
			logging.Error(err),
		)
	}

	return e.loadFromSnapshot(genesis, store, accountPaths, shrinkPaths, snapCfg, descriptor, opts, sinks)
}

// asReplayError keeps structured replay errors intact and wraps anything
// else the replay collaborator hands back.
func asReplayError(err error) *types.ReplayError {
	var re *types.ReplayError
	if errors.As(err, &re) {
		return re
	}
	return types.NewReplayError(err)
}
