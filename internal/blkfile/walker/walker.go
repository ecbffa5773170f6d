// Package walker decodes blk files block by block and drives a callback over a set of files.
package walker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/bytesource"
)

const readBufferSize = 1 << 20

// ErrOffsetBeyondEnd means a resume offset lies past the current end of the file.
var ErrOffsetBeyondEnd = errors.New("offset beyond end of file")

// Walker decodes files with a shared Decoder. It is safe for concurrent use on distinct files.
type Walker struct {
	decoder *decoder.Decoder
	metrics Metrics
	logger  *zap.Logger
}

// New constructs a Walker.
func New(dec *decoder.Decoder, metrics Metrics, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		decoder: dec,
		metrics: metrics,
		logger:  logger,
	}
}

// FileResult reports how far a file was decoded.
type FileResult struct {
	Path   string
	Blocks int
	Bytes  uint64
	// Offset is where the block after the last decoded one starts.
	Offset uint64
	// Err is the decode failure that ended the file early, if any.
	Err error
}

// Summary collects the results of a Walk.
type Summary struct {
	Files []FileResult
}

// Blocks returns the number of blocks decoded across all files.
func (s Summary) Blocks() int {
	var n int
	for _, f := range s.Files {
		n += f.Blocks
	}
	return n
}

// Failed returns the files whose decoding stopped on an error.
func (s Summary) Failed() []FileResult {
	var failed []FileResult
	for _, f := range s.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Err combines the per-file decode errors.
func (s Summary) Err() error {
	var err error
	for _, f := range s.Files {
		err = multierr.Append(err, f.Err)
	}
	return err
}

// DecodeFile lazily yields the blocks of path from its beginning.
func (w *Walker) DecodeFile(path string) iter.Seq2[*model.Block, error] {
	return w.Decode(path, 0)
}

// Decode lazily yields the blocks of path starting at offset, which must be a block boundary.
// Iteration ends at the end of the file or after the first error, which is yielded with a nil block.
// The file is closed when iteration ends or the consumer stops early.
func (w *Walker) Decode(path string, offset uint64) iter.Seq2[*model.Block, error] {
	return func(yield func(*model.Block, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("open %s: %w", path, err))
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			yield(nil, fmt.Errorf("stat %s: %w", path, err))
			return
		}
		size := uint64(info.Size())
		if offset > size {
			yield(nil, fmt.Errorf("%w: %s has %d bytes, offset %d", ErrOffsetBeyondEnd, path, size, offset))
			return
		}
		if offset > 0 {
			if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
				yield(nil, fmt.Errorf("seek %s to %d: %w", path, offset, err))
				return
			}
		}

		src := bytesource.NewAt(bufio.NewReaderSize(f, readBufferSize), offset, size-offset)
		for src.Remaining() > 0 {
			block, _, err := w.decoder.DecodeBlock(src)
			if err != nil {
				yield(nil, fmt.Errorf("decode %s: %w", path, err))
				return
			}
			if !yield(block, nil) {
				return
			}
		}
	}
}

// WalkFile decodes path from offset and hands every block to fn. Decode failures end the file
// and are reported in the result; the returned error is set only when fn fails or ctx is done.
func (w *Walker) WalkFile(ctx context.Context, path string, offset uint64, fn BlockFunc) (FileResult, error) {
	started := time.Now()
	res := FileResult{Path: path, Offset: offset}

	for block, err := range w.Decode(path, offset) {
		if err != nil {
			res.Err = err
			break
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if block.SuspectedWitness > 0 {
			w.logger.Warn("block has transactions with zero inputs, possibly unparsed witness data",
				zap.String("file", path),
				zap.Stringer("block", block.Hash),
				zap.Int("transactions", block.SuspectedWitness),
			)
		}
		if err := fn(ctx, path, block); err != nil {
			w.metrics.ObserveFile(err, started)
			return res, fmt.Errorf("handle block %s of %s: %w", block.Hash, path, err)
		}
		res.Blocks++
		res.Bytes += block.TotalSize
		res.Offset = block.NextOffset()
		w.metrics.ObserveBlock(block.TotalSize)
	}

	w.metrics.ObserveFile(res.Err, started)
	if res.Err != nil {
		w.metrics.ObserveDecodeError(decoder.ErrorKind(res.Err))
	}
	return res, nil
}

// Walk decodes paths one at a time in the given order. A file that cannot be opened or decoded
// is logged and recorded in the summary; the walk continues with the next file.
func (w *Walker) Walk(ctx context.Context, paths []string, fn BlockFunc) (Summary, error) {
	var summary Summary
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res, err := w.WalkFile(ctx, path, 0, fn)
		summary.Files = append(summary.Files, res)
		if err != nil {
			return summary, err
		}
		if res.Err != nil {
			w.logger.Warn("decode file stopped early",
				zap.String("file", path),
				zap.Int("blocks", res.Blocks),
				zap.Uint64("offset", res.Offset),
				zap.String("kind", decoder.ErrorKind(res.Err)),
				zap.Error(res.Err),
			)
			continue
		}
		w.logger.Debug("decoded file", zap.String("file", path), zap.Int("blocks", res.Blocks))
	}
	return summary, nil
}
