// SPDX-License-Identifier: MIT

// epgclean filters, normalises and orders an XMLTV guide.
//
// Usage:
//
//	epgclean                      # run once with defaults (epg.xml -> clean_epg.xml)
//	epgclean run -c config.yaml
//	epgclean watch -c config.yaml # re-run whenever the source or config changes
//	epgclean validate -f config.yaml
//
// Exit codes:
//   - 0: success
//   - 1: run or configuration error
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := 0
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		code = 1
	}
	stop()
	os.Exit(code)
}
