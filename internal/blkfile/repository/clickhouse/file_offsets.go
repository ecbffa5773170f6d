package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

const fileOffsetsQuery = `
SELECT
	file,
	max(file_offset + size + 8) AS next_offset
FROM blk_blocks
WHERE network = ?
GROUP BY file`

// FileOffsets returns, per file name, the offset just past the last stored block.
func (r *Repository) FileOffsets(ctx context.Context, network model.Network) (map[string]uint64, error) {
	start := time.Now()
	var err error
	offsets := make(map[string]uint64)
	defer func() {
		r.metrics.Observe("file_offsets", network, len(offsets), err, start)
	}()

	rows, err := r.conn.Query(ctx, fileOffsetsQuery, string(network))
	if err != nil {
		return nil, fmt.Errorf("query file offsets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			file   string
			offset uint64
		)
		if err = rows.Scan(&file, &offset); err != nil {
			return nil, fmt.Errorf("scan file offset: %w", err)
		}
		offsets[file] = offset
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file offsets: %w", err)
	}
	return offsets, nil
}
