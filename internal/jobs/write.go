// SPDX-License-Identifier: MIT

package jobs

import (
	"bufio"
	"context"
	"fmt"

	"github.com/ManuGH/epgclean/internal/epg"
	xglog "github.com/ManuGH/epgclean/internal/log"
	"github.com/google/renameio/v2"
)

// writeXMLTV writes the guide with full durability guarantees using renameio.
// The destination is either the previous file or the complete new one, never a
// partial write.
func writeXMLTV(ctx context.Context, path string, tv *epg.TV) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending XMLTV file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending XMLTV file")
		}
	}()

	bw := bufio.NewWriter(pendingFile)
	if err := epg.WriteXMLTV(bw, tv); err != nil {
		return fmt.Errorf("write XMLTV data: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush XMLTV data: %w", err)
	}

	// fsync + rename
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace XMLTV file: %w", err)
	}
	return nil
}
