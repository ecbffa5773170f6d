package ingester

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/batcher"
)

// ClickhouseBlockWriter batches blocks and stores them in ClickHouse.
// Each flush writes outputs, inputs and transactions before the blocks themselves,
// so a stored block row means its children are stored as well.
type ClickhouseBlockWriter struct {
	repo         ClickhouseRepository
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[model.InsertBlock]
}

// NewClickhouseBlockWriter constructs a ClickhouseBlockWriter backed by repo.
func NewClickhouseBlockWriter(repo ClickhouseRepository, logger *zap.Logger) *ClickhouseBlockWriter {
	w := &ClickhouseBlockWriter{
		repo:   repo,
		logger: logger,
	}

	w.blockBatcher = batcher.New[model.InsertBlock](
		logger.Named("blockBatcher"),
		w.flush,
		blockBatcherCapacity,
		blockBatcherFlushInterval,
		blockBatcherRPS,
	)
	return w
}

// Start begins the background flush loop.
func (w *ClickhouseBlockWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

// Stop flushes buffered blocks and returns the first flush error.
func (w *ClickhouseBlockWriter) Stop() error {
	return w.blockBatcher.Stop()
}

// WriteBlock queues b for the next flush.
func (w *ClickhouseBlockWriter) WriteBlock(ctx context.Context, b model.InsertBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.blockBatcher.Add(ctx, b)
}

func (w *ClickhouseBlockWriter) flush(ctx context.Context, insertBlocks []model.InsertBlock) error {
	blocks := make([]model.BlockRow, 0, len(insertBlocks))
	var (
		txs     []model.TransactionRow
		inputs  []model.InputRow
		outputs []model.OutputRow
	)

	for _, block := range insertBlocks {
		blocks = append(blocks, block.Block)
		txs = append(txs, block.Txs...)
		inputs = append(inputs, block.Inputs...)
		outputs = append(outputs, block.Outputs...)

		if len(outputs) >= outputFlushThreshold {
			if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionOutputs", zap.Int("count", len(outputs)))
			outputs = outputs[:0]
		}
		if len(inputs) >= inputFlushThreshold {
			if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionInputs", zap.Int("count", len(inputs)))
			inputs = inputs[:0]
		}
		if len(txs) >= transactionFlushThreshold {
			if err := w.repo.InsertTransactions(ctx, txs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactions", zap.Int("count", len(txs)))
			txs = txs[:0]
		}
	}

	if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
		return err
	}
	if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
		return err
	}
	if err := w.repo.InsertTransactions(ctx, txs); err != nil {
		return err
	}

	return w.repo.InsertBlocks(ctx, blocks)
}
