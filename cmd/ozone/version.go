package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// CLIVersion is set at build time through ldflags.
var (
	CLIVersion     = "v0.1.0+dev"
	CLIVersionHash = "unknown"
)

type VersionCmd struct{}

var versionCmd VersionCmd

func Version(_ context.Context, parser *flags.Parser) error {
	versionCmd = VersionCmd{}
	_, err := parser.AddCommand("version", "Show version info", "Show node version and git hash", &versionCmd)
	return err
}

func (opts *VersionCmd) Execute(_ []string) error {
	fmt.Printf("ozone %s (%s)\n", CLIVersion, CLIVersionHash)
	return nil
}
