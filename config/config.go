package config

import (
	"bytes"
	"fmt"

	"github.com/ozonechain/ozone/bootstrap"
	"github.com/ozonechain/ozone/config/encoding"
	vgfs "github.com/ozonechain/ozone/libs/fs"
	"github.com/ozonechain/ozone/metrics"
	"github.com/ozonechain/ozone/paths"
	"github.com/ozonechain/ozone/snapshot"
	"github.com/ozonechain/ozone/types"

	"github.com/BurntSushi/toml"
)

// Config ties together the configuration of every node package.
type Config struct {
	Bootstrap bootstrap.Config `group:"Bootstrap" namespace:"bootstrap"`
	Snapshot  snapshot.Config  `group:"Snapshot" namespace:"snapshot"`
	Metrics   metrics.Config   `group:"Metrics" namespace:"metrics"`

	SnapshotsEnabled encoding.Bool       `choice:"true" choice:"false" description:"Restore from local snapshot archives at startup when available" long:"snapshots-enabled"`
	SnapshotFormat   types.ArchiveFormat `description:"Format used when producing snapshot archives" long:"snapshot-format"`
}

// NewDefaultConfig returns a set of default configs for all node packages,
// as specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Bootstrap:        bootstrap.NewDefaultConfig(),
		Snapshot:         snapshot.NewDefaultConfig(),
		Metrics:          metrics.NewDefaultConfig(),
		SnapshotsEnabled: true,
		SnapshotFormat:   types.TarZstd,
	}
}

// SnapshotLayout derives the runtime snapshot directory layout from the
// node homes, or nil when snapshots are disabled.
func (c *Config) SnapshotLayout(p paths.Paths) *types.SnapshotConfig {
	if !c.SnapshotsEnabled {
		return nil
	}
	return &types.SnapshotConfig{
		StagingPath:       p.StatePathFor(paths.SnapshotStagingStateHome),
		ArchiveOutputPath: p.StatePathFor(paths.SnapshotStateHome),
		Format:            c.SnapshotFormat,
	}
}

// Read loads the node configuration from its default location under the
// given homes.
func Read(p paths.Paths) (*Config, error) {
	path := p.ConfigPathFor(paths.NodeDefaultConfigFile)
	content, err := vgfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse configuration %q: %w", path, err)
	}
	return &cfg, nil
}

// Write saves the configuration at its default location under the given
// homes, creating missing directories on the way.
func Write(p paths.Paths, cfg *Config) error {
	path, err := p.CreateConfigPathFor(paths.NodeDefaultConfigFile)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return fmt.Errorf("could not serialise configuration: %w", err)
	}
	return vgfs.WriteFile(path, buf.Bytes())
}
