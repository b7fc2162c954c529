package config_test

import (
	"testing"

	"github.com/ozonechain/ozone/config"
	"github.com/ozonechain/ozone/paths"
	"github.com/ozonechain/ozone/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("configuration survives a write and read cycle", testConfigRoundTrip)
	t.Run("reading a missing configuration fails", testReadMissingConfig)
	t.Run("snapshot layout derives from the state home", testSnapshotLayout)
	t.Run("snapshot layout is nil when snapshots are disabled", testSnapshotLayoutDisabled)
}

func testConfigRoundTrip(t *testing.T) {
	p := paths.New(t.TempDir())

	cfg := config.NewDefaultConfig()
	cfg.SnapshotsEnabled = false
	cfg.SnapshotFormat = types.TarGzip
	require.NoError(t, config.Write(p, &cfg))

	got, err := config.Read(p)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func testReadMissingConfig(t *testing.T) {
	p := paths.New(t.TempDir())
	_, err := config.Read(p)
	require.Error(t, err)
}

func testSnapshotLayout(t *testing.T) {
	p := paths.New(t.TempDir())
	cfg := config.NewDefaultConfig()

	layout := cfg.SnapshotLayout(p)
	require.NotNil(t, layout)
	assert.Equal(t, p.StatePathFor(paths.SnapshotStagingStateHome), layout.StagingPath)
	assert.Equal(t, p.StatePathFor(paths.SnapshotStateHome), layout.ArchiveOutputPath)
	assert.Equal(t, types.TarZstd, layout.Format)
}

func testSnapshotLayoutDisabled(t *testing.T) {
	p := paths.New(t.TempDir())
	cfg := config.NewDefaultConfig()
	cfg.SnapshotsEnabled = false

	assert.Nil(t, cfg.SnapshotLayout(p))
}
