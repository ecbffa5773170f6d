package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

const insertBlocksQuery = `
INSERT INTO blk_blocks (
	network,
	file,
	file_offset,
	hash,
	prev_hash,
	merkle_root,
	version,
	timestamp,
	bits,
	nonce,
	size,
	tx_count
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.BlockRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", firstNetwork(blocks), len(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			string(block.Network),
			block.File,
			block.Offset,
			block.Hash,
			block.PrevHash,
			block.MerkleRoot,
			block.Version,
			block.Timestamp,
			block.Bits,
			block.Nonce,
			block.Size,
			block.TXCount,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %s: %w", block.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
