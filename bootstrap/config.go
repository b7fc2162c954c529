package bootstrap

import (
	"github.com/ozonechain/ozone/config/encoding"
	"github.com/ozonechain/ozone/logging"
)

const namedLogger = "bootstrap"

type Config struct {
	Level encoding.LogLevel `choice:"debug" choice:"info" choice:"warning" choice:"error" choice:"panic" choice:"fatal" description:"Logging level (default: info)" long:"log-level"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}

func NewTestConfig() Config {
	cfg := NewDefaultConfig()
	cfg.Level = encoding.LogLevel{Level: logging.DebugLevel}
	return cfg
}
