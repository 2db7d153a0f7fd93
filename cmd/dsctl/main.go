// Command dsctl runs a line-oriented script of data-structure commands.
//
// Usage:
//
//	dsctl [-f script] [-v] [-strict]
//
// Each line either creates a named instance, destroys one, or applies an
// operation to one:
//
//	new avl t
//	t insert 5
//	t height
//	free t
//
// Results go to stdout, diagnostics to stderr. Blank lines and lines
// starting with # are ignored. The exit status is 1 when any command failed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvds/bridge"
)

func main() {
	var (
		script = flag.String("f", "", "script file (default stdin)")
		debug  = flag.Bool("v", false, "log every command")
		strict = flag.Bool("strict", false, "stop at the first failing command")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var in io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			logger.Error("open script", "path", *script, "err", err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	reg := bridge.NewRegistry()
	defer reg.Close()

	ip := newInterpreter(reg, os.Stdout, logger)
	failed, err := ip.run(in, *strict)
	if err != nil {
		logger.Error("script aborted", "err", err)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d command(s) failed\n", failed)
		reg.Close()
		os.Exit(1)
	}
}
