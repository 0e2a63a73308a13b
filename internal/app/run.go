package app

import (
	"context"
	"fmt"

	"github.com/0x4D44/mdtouch/internal/ctxlog"
	"github.com/0x4D44/mdtouch/internal/fsutil"
)

// Run executes the main application logic based on the provided configuration.
// Paths are touched strictly in argument order; the first failure aborts the
// run and the remaining paths are never attempted. A successful run produces
// no output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path_count", len(a.config.Paths))

	for _, path := range a.config.Paths {
		if err := fsutil.Touch(ctx, path); err != nil {
			return fmt.Errorf("Error touching %s: %w", path, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
