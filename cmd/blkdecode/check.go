package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/walker"
)

// check decodes every matching file once without writing anything and fails if any file stops early.
func check(ctx context.Context, blockWalker *walker.Walker, dir, pattern string, logger *zap.Logger) error {
	files, err := walker.ListFiles(dir, pattern)
	if err != nil {
		return fmt.Errorf("list block files: %w", err)
	}

	var txs int
	summary, err := blockWalker.Walk(ctx, files, func(_ context.Context, _ string, block *model.Block) error {
		txs += len(block.Transactions)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk block files: %w", err)
	}

	failed := summary.Failed()
	logger.Info("check finished",
		zap.Int("files", len(summary.Files)),
		zap.Int("failed", len(failed)),
		zap.Int("blocks", summary.Blocks()),
		zap.Int("transactions", txs),
	)
	if err := summary.Err(); err != nil {
		return fmt.Errorf("%d of %d files failed to decode: %w", len(failed), len(summary.Files), err)
	}
	return nil
}
