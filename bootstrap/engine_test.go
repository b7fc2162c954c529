package bootstrap_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ozonechain/ozone/bootstrap"
	"github.com/ozonechain/ozone/bootstrap/mocks"
	"github.com/ozonechain/ozone/logging"
	"github.com/ozonechain/ozone/types"
	tmocks "github.com/ozonechain/ozone/types/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tstEngine struct {
	*bootstrap.Engine
	ctrl     *gomock.Controller
	locator  *mocks.MockLocator
	decoder  *mocks.MockDecoder
	replayer *mocks.MockReplayer
	store    *mocks.MockLedgerStore
	fatals   []string
}

func getTestEngine(t *testing.T) *tstEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	te := &tstEngine{
		ctrl:     ctrl,
		locator:  mocks.NewMockLocator(ctrl),
		decoder:  mocks.NewMockDecoder(ctrl),
		replayer: mocks.NewMockReplayer(ctrl),
		store:    mocks.NewMockLedgerStore(ctrl),
	}
	te.Engine = bootstrap.New(logging.NewTestLogger(), bootstrap.NewTestConfig(), te.locator, te.decoder, te.replayer)
	// recording hook: the engine panics right after so fatal paths stay
	// observable without exiting the test process
	te.SetFatalHook(func(msg string, _ ...logging.Field) {
		te.fatals = append(te.fatals, msg)
	})
	return te
}

func someHash(b byte) types.Hash {
	var h types.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func genesisConfig() *types.GenesisConfig {
	return &types.GenesisConfig{
		ChainID:      "ozone-test-1",
		CreationTime: time.Unix(1600000000, 0),
		Hash:         someHash(0xa1),
	}
}

func newStateMock(ctrl *gomock.Controller, slot types.Slot, hash types.Hash) *tmocks.MockState {
	s := tmocks.NewMockState(ctrl)
	s.EXPECT().Slot().Return(slot).AnyTimes()
	s.EXPECT().AccountsHash().Return(hash).AnyTimes()
	return s
}

func replayResult(root types.State) *bootstrap.ReplayResult {
	return &bootstrap.ReplayResult{
		Forks:          types.NewForks(root),
		LeaderSchedule: types.NewLeaderSchedule(nil),
	}
}

func snapshotLayout(t *testing.T) *types.SnapshotConfig {
	t.Helper()
	home := t.TempDir()
	return &types.SnapshotConfig{
		StagingPath:       filepath.Join(home, "staging"),
		ArchiveOutputPath: filepath.Join(home, "archives"),
		Format:            types.TarZstd,
	}
}

func TestGenesisBootstrap(t *testing.T) {
	t.Run("no snapshot config always replays from genesis", testNoSnapshotConfigReplaysFromGenesis)
	t.Run("no discoverable archive falls back to genesis", testNoArchiveFallsBackToGenesis)
	t.Run("genesis replay failure is returned as a structured error", testGenesisReplayFailureIsRecoverable)
}

func TestSnapshotRestore(t *testing.T) {
	t.Run("verified claim returns an anchored state", testVerifiedClaimReturnsAnchoredState)
	t.Run("hash mismatch terminates before any state is returned", testHashMismatchTerminates)
	t.Run("slot mismatch terminates before any state is returned", testSlotMismatchTerminates)
	t.Run("empty account paths terminate before any decode attempt", testEmptyAccountPathsTerminate)
	t.Run("decode failure terminates instead of falling back to genesis", testDecodeFailureTerminates)
	t.Run("shrink paths are associated with the decoded state", testShrinkPathsAreForwarded)
	t.Run("full rehash verification recomputes the hash eagerly", testFullRehashVerification)
	t.Run("status sinks are forwarded untouched", testStatusSinksAreForwardedUntouched)
	t.Run("catch-up replay failure is returned as a structured error", testCatchUpReplayFailureIsRecoverable)
}

func TestStagingPath(t *testing.T) {
	t.Run("staging path is wiped and recreated on every call", testStagingPathIsReset)
	t.Run("staging path creation failure terminates", testStagingPathCreationFailureTerminates)
}

func testNoSnapshotConfigReplaysFromGenesis(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}
	root := newStateMock(eng.ctrl, 10, someHash(0x10))

	// ledger store holds entries e0..e10
	eng.store.EXPECT().TipSlot().Return(types.Slot(10)).AnyTimes()
	// the locator has no expectations: with snapshots disabled it must
	// never be consulted, whatever is on disk
	eng.replayer.EXPECT().
		ReplayFromGenesis(genesis, eng.store, accountPaths, opts, nil).
		Times(1).
		Return(replayResult(root), nil)

	loaded, err := eng.Load(genesis, eng.store, accountPaths, nil, nil, opts, nil)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Nil(t, loaded.VerifiedAnchor)
	assert.Equal(t, types.Slot(10), loaded.Forks.Root().Slot())
	assert.NotNil(t, loaded.LeaderSchedule)
	assert.Empty(t, eng.fatals)
}

func testNoArchiveFallsBackToGenesis(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}
	root := newStateMock(eng.ctrl, 0, someHash(0x00))

	eng.store.EXPECT().TipSlot().Return(types.Slot(0)).AnyTimes()
	eng.locator.EXPECT().
		HighestArchive(layout.ArchiveOutputPath).
		Times(1).
		Return(nil, types.ErrNoSnapshotArchive)
	eng.replayer.EXPECT().
		ReplayFromGenesis(genesis, eng.store, accountPaths, opts, nil).
		Times(1).
		Return(replayResult(root), nil)

	loaded, err := eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, nil)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Nil(t, loaded.VerifiedAnchor)
}

func testGenesisReplayFailureIsRecoverable(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}

	eng.store.EXPECT().TipSlot().Return(types.Slot(5)).AnyTimes()
	eng.replayer.EXPECT().
		ReplayFromGenesis(genesis, eng.store, accountPaths, opts, nil).
		Times(1).
		Return(nil, types.NewReplayErrorAt(3, errors.New("malformed entry")))

	loaded, err := eng.Load(genesis, eng.store, accountPaths, nil, nil, opts, nil)
	require.Error(t, err)
	assert.Nil(t, loaded)

	var re *types.ReplayError
	require.True(t, errors.As(err, &re))
	require.NotNil(t, re.Slot)
	assert.Equal(t, types.Slot(3), *re.Slot)
	// replay failures are the caller's to retry, never fatal
	assert.Empty(t, eng.fatals)
}

func testVerifiedClaimReturnsAnchoredState(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}
	hash := someHash(0x42)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "snapshot-500-whatever.tar.zst"),
		Slot:   500,
		Hash:   hash,
		Format: types.TarZstd,
	}
	decoded := newStateMock(eng.ctrl, 500, hash)

	eng.locator.EXPECT().
		HighestArchive(layout.ArchiveOutputPath).
		Times(1).
		Return(descriptor, nil)
	eng.decoder.EXPECT().
		Decode(gomock.Any()).
		Times(1).
		DoAndReturn(func(req bootstrap.DecodeRequest) (types.State, error) {
			assert.Equal(t, accountPaths, req.AccountPaths)
			assert.Equal(t, layout.StagingPath, req.StagingPath)
			assert.Equal(t, descriptor.Path, req.ArchivePath)
			assert.Equal(t, types.TarZstd, req.Format)
			assert.Equal(t, genesis, req.Genesis)
			return decoded, nil
		})
	eng.replayer.EXPECT().
		ReplayFromRoot(eng.store, decoded, opts, nil).
		Times(1).
		Return(replayResult(decoded), nil)

	loaded, err := eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, nil)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.VerifiedAnchor)
	assert.Equal(t, types.Slot(500), loaded.VerifiedAnchor.Slot)
	assert.Equal(t, hash, loaded.VerifiedAnchor.Hash)
	assert.Empty(t, eng.fatals)
}

func testHashMismatchTerminates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   someHash(0x42),
		Format: types.TarZstd,
	}
	// same slot, different accounts hash
	decoded := newStateMock(eng.ctrl, 500, someHash(0x43))

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(decoded, nil)
	// no ReplayFromRoot expectation: replay must never start

	require.Panics(t, func() {
		_, _ = eng.Load(genesis, eng.store, accountPaths, nil, layout, types.ProcessOptions{}, nil)
	})
	require.Len(t, eng.fatals, 1)
	assert.Equal(t, "Snapshot claim does not match decoded content", eng.fatals[0])
}

func testSlotMismatchTerminates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	hash := someHash(0x42)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   hash,
		Format: types.TarZstd,
	}
	// right hash, wrong slot
	decoded := newStateMock(eng.ctrl, 499, hash)

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(decoded, nil)

	require.Panics(t, func() {
		_, _ = eng.Load(genesis, eng.store, accountPaths, nil, layout, types.ProcessOptions{}, nil)
	})
	require.Len(t, eng.fatals, 1)
	assert.Equal(t, "Snapshot claim does not match decoded content", eng.fatals[0])
}

func testEmptyAccountPathsTerminate(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   someHash(0x42),
		Format: types.TarZstd,
	}

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	// no decoder expectation: the check happens before any decode attempt

	require.Panics(t, func() {
		_, _ = eng.Load(genesis, eng.store, nil, nil, layout, types.ProcessOptions{}, nil)
	})
	require.Len(t, eng.fatals, 1)
	assert.Equal(t, "Account paths not present when booting from snapshot", eng.fatals[0])
}

func testDecodeFailureTerminates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   someHash(0x42),
		Format: types.TarZstd,
	}

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(nil, errors.New("truncated archive"))
	// no genesis replay expectation: an undecodable archive must never be
	// silently replaced by a genesis replay

	require.Panics(t, func() {
		_, _ = eng.Load(genesis, eng.store, accountPaths, nil, layout, types.ProcessOptions{}, nil)
	})
	require.Len(t, eng.fatals, 1)
	assert.Equal(t, "Snapshot archive could not be decoded", eng.fatals[0])
}

func testShrinkPathsAreForwarded(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	shrinkPaths := []string{t.TempDir(), t.TempDir()}
	opts := types.ProcessOptions{}
	hash := someHash(0x42)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   hash,
		Format: types.TarZstd,
	}
	decoded := newStateMock(eng.ctrl, 500, hash)
	decoded.EXPECT().SetShrinkPaths(shrinkPaths).Times(1)

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(decoded, nil)
	eng.replayer.EXPECT().
		ReplayFromRoot(eng.store, decoded, opts, nil).
		Times(1).
		Return(replayResult(decoded), nil)

	_, err := eng.Load(genesis, eng.store, accountPaths, shrinkPaths, layout, opts, nil)
	require.NoError(t, err)
}

func testFullRehashVerification(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{FullRehashVerification: true}
	hash := someHash(0x42)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   hash,
		Format: types.TarZstd,
	}
	decoded := newStateMock(eng.ctrl, 500, hash)
	decoded.EXPECT().RecalculateAccountsHash().Times(1).Return(hash)

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(decoded, nil)
	eng.replayer.EXPECT().
		ReplayFromRoot(eng.store, decoded, opts, nil).
		Times(1).
		Return(replayResult(decoded), nil)

	loaded, err := eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, nil)
	require.NoError(t, err)
	require.NotNil(t, loaded.VerifiedAnchor)
}

func testStatusSinksAreForwardedUntouched(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}
	hash := someHash(0x42)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   hash,
		Format: types.TarZstd,
	}
	decoded := newStateMock(eng.ctrl, 500, hash)

	txCh := make(chan *types.TransactionStatus, 1)
	metaCh := make(chan *types.BlockMeta, 1)
	sinks := &bootstrap.StatusSinks{
		TransactionStatus: txCh,
		BlockMeta:         metaCh,
	}

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(decoded, nil)
	eng.replayer.EXPECT().
		ReplayFromRoot(eng.store, decoded, opts, gomock.Any()).
		Times(1).
		DoAndReturn(func(_ bootstrap.LedgerStore, root types.State, _ types.ProcessOptions, got *bootstrap.StatusSinks) (*bootstrap.ReplayResult, error) {
			// the exact same sinks, not a copy
			require.Same(t, sinks, got)
			return replayResult(root), nil
		})

	_, err := eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, sinks)
	require.NoError(t, err)
	// the engine itself never writes to the sinks
	assert.Len(t, txCh, 0)
	assert.Len(t, metaCh, 0)
}

func testCatchUpReplayFailureIsRecoverable(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}
	hash := someHash(0x42)
	descriptor := &types.ArchiveDescriptor{
		Path:   filepath.Join(layout.ArchiveOutputPath, "archive"),
		Slot:   500,
		Hash:   hash,
		Format: types.TarZstd,
	}
	decoded := newStateMock(eng.ctrl, 500, hash)

	eng.locator.EXPECT().HighestArchive(layout.ArchiveOutputPath).Times(1).Return(descriptor, nil)
	eng.decoder.EXPECT().Decode(gomock.Any()).Times(1).Return(decoded, nil)
	eng.replayer.EXPECT().
		ReplayFromRoot(eng.store, decoded, opts, nil).
		Times(1).
		Return(nil, errors.New("malformed entry above anchor"))

	loaded, err := eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, nil)
	require.Error(t, err)
	assert.Nil(t, loaded)

	var re *types.ReplayError
	require.True(t, errors.As(err, &re))
	assert.Empty(t, eng.fatals)
}

func testStagingPathIsReset(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	layout := snapshotLayout(t)
	accountPaths := []string{t.TempDir()}
	opts := types.ProcessOptions{}

	eng.store.EXPECT().TipSlot().Return(types.Slot(0)).AnyTimes()
	eng.locator.EXPECT().
		HighestArchive(layout.ArchiveOutputPath).
		Times(2).
		Return(nil, types.ErrNoSnapshotArchive)
	eng.replayer.EXPECT().
		ReplayFromGenesis(genesis, eng.store, accountPaths, opts, nil).
		Times(2).
		DoAndReturn(func(*types.GenesisConfig, bootstrap.LedgerStore, []string, types.ProcessOptions, *bootstrap.StatusSinks) (*bootstrap.ReplayResult, error) {
			return replayResult(newStateMock(eng.ctrl, 0, someHash(0))), nil
		})

	_, err := eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, nil)
	require.NoError(t, err)

	// leave junk behind, as a crashed decode would
	leftover := filepath.Join(layout.StagingPath, "half-written-state")
	require.NoError(t, os.WriteFile(leftover, []byte("junk"), 0o600))

	_, err = eng.Load(genesis, eng.store, accountPaths, nil, layout, opts, nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(layout.StagingPath)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func testStagingPathCreationFailureTerminates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	genesis := genesisConfig()
	// a staging path below a regular file cannot be created
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte{}, 0o600))
	layout := &types.SnapshotConfig{
		StagingPath:       filepath.Join(blocker, "staging"),
		ArchiveOutputPath: t.TempDir(),
		Format:            types.TarZstd,
	}

	require.Panics(t, func() {
		_, _ = eng.Load(genesis, eng.store, []string{t.TempDir()}, nil, layout, types.ProcessOptions{}, nil)
	})
	require.Len(t, eng.fatals, 1)
	assert.Equal(t, "Could not create snapshot staging directory", eng.fatals[0])
}
