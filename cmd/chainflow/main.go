// Package main provides the CLI entrypoint for chainflow.
//
// chainflow checks that the steps of every validation chain accept the type
// flowing into them:
//   - check: report chains that need reordering, a NotNull step, or are broken
//   - plan: print the resolved step order and flowing types
//   - fix: rewrite fixable chains in the manifest
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	if !errors.Is(err, errFindings) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(1)
}
