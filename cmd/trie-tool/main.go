// Command trie-tool benchmarks and stress-tests the byte-radix trie
// container: a single urfave/cli app with one subcommand per workload.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cprime/bytetrie/internal/diagnostics"
)

var (
	diagnosticsFlag = cli.IntFlag{
		Name:  "diagnostic-port",
		Usage: "enable hosting of a realtime diagnostic server by providing a port",
		Value: 0,
	}
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	traceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
)

func main() {
	app := &cli.App{
		Name:  "trie-tool",
		Usage: "byte-radix trie benchmarking toolbox",
		Flags: []cli.Flag{
			&diagnosticsFlag,
			&cpuProfileFlag,
			&traceFlag,
		},
		Commands: []*cli.Command{
			&benchCommand,
			&profileCommand,
			&stressCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withDiagnostics(action cli.ActionFunc) cli.ActionFunc {
	return diagnostics.WrapAction(action, &diagnosticsFlag, &cpuProfileFlag, &traceFlag)
}
