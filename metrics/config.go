package metrics

import (
	"github.com/ozonechain/ozone/config/encoding"
	"github.com/ozonechain/ozone/logging"
)

const namedLogger = "metrics"

// Config represents the configuration of the metric package.
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	Enabled encoding.Bool     `long:"enabled" choice:"true" choice:"false" description:"Expose prometheus metrics over HTTP"`
	Path    string            `long:"path" description:"Path the metrics handler is mounted on"`
	Port    int               `long:"port" description:"Port the metrics endpoint listens on"`
}

// NewDefaultConfig creates an instance of the package specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Enabled: false,
		Path:    "/metrics",
		Port:    2112,
	}
}
