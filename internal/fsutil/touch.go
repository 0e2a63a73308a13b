// Package fsutil provides file system utility functions.
package fsutil

import (
	"context"
	"os"
	"time"

	"github.com/0x4D44/mdtouch/internal/ctxlog"
)

// Touch mimics the behaviour of the Unix touch(1) command for a single
// path. If no entry exists at path, an empty regular file is created.
// In either case the entry's access and modification times are set to the
// current wall-clock time. Errors from the underlying OS calls are
// returned unmodified.
func Touch(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if os.IsNotExist(err) {
		// O_TRUNC keeps the outcome well-defined if another process
		// creates the file between the stat and the open.
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
		logger.Debug("Created empty file.", "path", path)
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return err
	}
	logger.Debug("Timestamps updated.", "path", path, "time", now)
	return nil
}
