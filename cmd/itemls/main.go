package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ferhatb/itemls/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (yaml)")
	endpoint := flag.String("endpoint", "", "fetch from this URL instead of the configured one")
	pageSize := flag.Int("size", 0, "items per page")
	cached := flag.Bool("cached", false, "use the last fetched snapshot, skip the network")
	noClamp := flag.Bool("no-clamp", false, "keep \"next\" available past the last page")
	verbose := flag.Bool("verbose", false, "debug logging on stderr")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		ConfigPath: *configPath,
		Endpoint:   *endpoint,
		PageSize:   *pageSize,
		Cached:     *cached,
		NoClamp:    *noClamp,
		Verbose:    *verbose,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
