package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/treetop-tui/treetop/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	dontHideSelf := flag.Bool("dont-hide-self", false,
		"show this treetop process even when only its arguments match the pattern")
	flag.Usage = usage
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{
		Pattern:      flag.Arg(0),
		DontHideSelf: *dontHideSelf,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "treetop: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: treetop [flags] [pattern]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Display the process table as a tree, filtered by an optional regex.\n\n")
	flag.PrintDefaults()
}
