package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ozonechain/ozone/logging"
	"github.com/ozonechain/ozone/paths"
	"github.com/ozonechain/ozone/snapshot"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
)

type SnapshotsCmd struct {
	Home       string `description:"Custom home directory for state and configuration" long:"home"`
	OutputPath string `description:"Directory to discover snapshot archives in, defaults to the node snapshot state home" long:"output-path"`
}

var snapshotsCmd SnapshotsCmd

func Snapshots(_ context.Context, parser *flags.Parser) error {
	snapshotsCmd = SnapshotsCmd{}
	_, err := parser.AddCommand("snapshots", "List snapshot archives", "List the discoverable snapshot archives and the identity each one claims", &snapshotsCmd)
	return err
}

func (opts *SnapshotsCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromEnv("dev")
	defer log.AtExit()
	log.SetLevel(logging.WarnLevel)

	dir := opts.OutputPath
	if dir == "" {
		dir = paths.New(opts.Home).StatePathFor(paths.SnapshotStateHome)
	}

	locator := snapshot.NewLocator(log, snapshot.NewDefaultConfig())
	descriptors, err := locator.List(dir)
	if err != nil {
		return err
	}
	if len(descriptors) == 0 {
		fmt.Printf("no snapshot archives found in %s\n", dir)
		return nil
	}

	for _, d := range descriptors {
		size := "?"
		if info, err := os.Stat(d.Path); err == nil {
			size = humanize.IBytes(uint64(info.Size()))
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", d.Slot, d.Hash.String(), d.Format.String(), size, d.Path)
	}
	return nil
}
