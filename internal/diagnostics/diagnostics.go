// Package diagnostics wraps a CLI action with optional CPU profiling,
// execution tracing, and a pprof HTTP server, for use by cmd/trie-tool's
// benchmark and stress commands.
package diagnostics

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// WrapAction wraps action so that, before it runs, an optional diagnostic
// HTTP server is started, CPU profiling begins if cpuProfileFlag names a
// file, and execution tracing begins if traceFlag names a file. Both are
// stopped after action returns.
func WrapAction(action cli.ActionFunc, diagnosticsFlag *cli.IntFlag, cpuProfileFlag, traceFlag *cli.StringFlag) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		startDiagnosticServer(ctx.Int(diagnosticsFlag.Names()[0]))

		cpuProfilePath := ctx.String(cpuProfileFlag.Names()[0])
		if strings.TrimSpace(cpuProfilePath) != "" {
			if err := startCPUProfile(cpuProfilePath); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
		}

		tracePath := ctx.String(traceFlag.Names()[0])
		if strings.TrimSpace(tracePath) != "" {
			if err := startTrace(tracePath); err != nil {
				return err
			}
			defer trace.Stop()
		}

		return action(ctx)
	}
}

func startDiagnosticServer(port int) {
	if port <= 0 || port >= (1 << 16) {
		return
	}
	fmt.Printf("starting diagnostic server at http://localhost:%d\n", port)
	go func() {
		log.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", port), nil))
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}

func startCPUProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	return nil
}

func startTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create trace file: %w", err)
	}
	if err := trace.Start(f); err != nil {
		return fmt.Errorf("could not start trace: %w", err)
	}
	return nil
}
