package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

const insertTransactionOutputsQuery = `
INSERT INTO blk_transaction_outputs (
	network,
	block_hash,
	txid,
	output_index,
	value,
	script_hex
) VALUES`

// InsertTransactionOutputs stores transaction outputs in ClickHouse.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.OutputRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", firstNetwork(outputs), len(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionOutputsQuery)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	for _, output := range outputs {
		if err = batch.Append(
			string(output.Network),
			output.BlockHash,
			output.TxID,
			output.Index,
			output.Value,
			output.ScriptHex,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
