package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	ctx := context.Background()
	parser := flags.NewNamedParser("ozone", flags.Default)

	for _, register := range []func(context.Context, *flags.Parser) error{
		Snapshots,
		Version,
	} {
		if err := register(ctx, parser); err != nil {
			os.Exit(1)
		}
	}

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
