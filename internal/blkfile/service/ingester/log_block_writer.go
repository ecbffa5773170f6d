package ingester

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/safe"
)

// LogBlockWriter logs a one-line summary per block. It is used when no database is configured.
type LogBlockWriter struct {
	logger *zap.Logger
}

// NewLogBlockWriter constructs a LogBlockWriter.
func NewLogBlockWriter(logger *zap.Logger) *LogBlockWriter {
	return &LogBlockWriter{logger: logger}
}

// Start is a no-op.
func (w *LogBlockWriter) Start(context.Context) {}

// Stop is a no-op.
func (w *LogBlockWriter) Stop() error { return nil }

// WriteBlock logs b.
func (w *LogBlockWriter) WriteBlock(ctx context.Context, b model.InsertBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var total uint64
	for _, out := range b.Outputs {
		total += out.Value
	}

	fields := []zap.Field{
		zap.String("hash", b.Block.Hash),
		zap.String("prev_hash", b.Block.PrevHash),
		zap.String("file", b.Block.File),
		zap.Uint64("offset", b.Block.Offset),
		zap.Time("time", b.Block.Timestamp),
		zap.Uint32("size", b.Block.Size),
		zap.Uint32("txs", b.Block.TXCount),
		zap.Int("inputs", len(b.Inputs)),
		zap.Int("outputs", len(b.Outputs)),
	}
	if sat, err := safe.Int64(total); err == nil {
		fields = append(fields, zap.Stringer("output_value", btcutil.Amount(sat)))
	} else {
		fields = append(fields, zap.Uint64("output_value_sat", total))
	}

	w.logger.Info("block", fields...)
	return nil
}
