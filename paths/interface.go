package paths

// File and directory names below are relative to their home, e.g. the
// state home for snapshots lives under the state root of the node.
type (
	CachePath  string
	ConfigPath string
	DataPath   string
	StatePath  string
)

const (
	// NodeConfigHome is the folder containing the node configuration files.
	NodeConfigHome ConfigPath = "node"
	// NodeDefaultConfigFile is the default toml configuration of the node.
	NodeDefaultConfigFile ConfigPath = "node/config.toml"

	// NodeStateHome is the folder containing the state of the node.
	NodeStateHome StatePath = "node"
	// SnapshotStateHome is the folder snapshot archives are written to and
	// discovered in.
	SnapshotStateHome StatePath = "node/snapshots"
	// SnapshotStagingStateHome is scratch space used while decoding or
	// producing snapshot archives. Wiped on every bootstrap.
	SnapshotStagingStateHome StatePath = "node/snapshots/staging"
	// LedgerStateHome is the folder backing the account stores.
	LedgerStateHome StatePath = "node/ledger"
)

type Paths interface {
	CreateCachePathFor(CachePath) (string, error)
	CreateConfigPathFor(ConfigPath) (string, error)
	CreateDataPathFor(DataPath) (string, error)
	CreateStatePathFor(StatePath) (string, error)
	CachePathFor(CachePath) string
	ConfigPathFor(ConfigPath) string
	DataPathFor(DataPath) string
	StatePathFor(StatePath) string
}

// New instantiates the specific implementation of the Paths interface based
// on the value of the customHome. If a customHome is specified the custom
// implementation CustomPaths is returned, the standard DefaultPaths
// otherwise.
func New(customHome string) Paths {
	if len(customHome) != 0 {
		return &CustomPaths{
			CustomHome: customHome,
		}
	}

	return &DefaultPaths{}
}
