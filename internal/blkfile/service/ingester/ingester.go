// Package ingester feeds blocks decoded from blk*.dat files into a BlockWriter.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/walker"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/workerpool"
)

// Config selects the files to ingest and how.
type Config struct {
	Network        model.Network
	Dir            string
	Pattern        string
	Workers        int
	Follow         bool
	FollowInterval time.Duration
}

// Service scans a blocks directory and writes every decoded block.
// It remembers, per file, the offset after the last written block so a rescan only reads new data.
type Service struct {
	cfg       Config
	walker    BlockWalker
	converter BlockConverter
	writer    BlockWriter
	offsets   OffsetSource
	metrics   Metrics
	logger    *zap.Logger

	mu       sync.Mutex
	resumeAt map[string]uint64
}

// NewService builds a Service. offsets may be nil, in which case every file is read from the start.
func NewService(
	cfg Config,
	blockWalker BlockWalker,
	converter BlockConverter,
	writer BlockWriter,
	offsets OffsetSource,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if blockWalker == nil {
		return nil, errors.New("block walker is required")
	}
	if converter == nil {
		return nil, errors.New("block converter is required")
	}
	if writer == nil {
		return nil, errors.New("block writer is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if cfg.Pattern == "" {
		cfg.Pattern = walker.DefaultPattern
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.FollowInterval <= 0 {
		cfg.FollowInterval = defaultFollowInterval
	}

	return &Service{
		cfg:       cfg,
		walker:    blockWalker,
		converter: converter,
		writer:    writer,
		offsets:   offsets,
		metrics:   metrics,
		logger: logger.With(
			zap.String("network", string(cfg.Network)),
			zap.String("dir", cfg.Dir),
		),
		resumeAt: make(map[string]uint64),
	}, nil
}

// Run ingests the directory once, or keeps rescanning it in follow mode until ctx is done.
// Cancellation of ctx is a clean shutdown: buffered blocks are still written and Run returns nil.
func (s *Service) Run(ctx context.Context) error {
	s.writer.Start(context.WithoutCancel(ctx))

	err := s.run(ctx)
	if stopErr := s.writer.Stop(); stopErr != nil {
		err = multierr.Append(err, fmt.Errorf("stop block writer: %w", stopErr))
	}
	return err
}

func (s *Service) run(ctx context.Context) error {
	if err := s.loadOffsets(ctx); err != nil {
		return err
	}

	var tick <-chan time.Time
	if s.cfg.Follow {
		ticker := time.NewTicker(s.cfg.FollowInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if err := s.Scan(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !s.cfg.Follow {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
}

func (s *Service) loadOffsets(ctx context.Context) error {
	if s.offsets == nil {
		return nil
	}
	offsets, err := s.offsets.FileOffsets(ctx, s.cfg.Network)
	if err != nil {
		return fmt.Errorf("load file offsets: %w", err)
	}

	s.mu.Lock()
	maps.Copy(s.resumeAt, offsets)
	s.mu.Unlock()

	if len(offsets) > 0 {
		s.logger.Info("resuming from stored file offsets", zap.Int("files", len(offsets)))
	}
	return nil
}

// Scan lists the matching files and ingests each of them from its remembered offset.
// Files are spread over the configured number of workers; blocks within a file keep their order.
func (s *Service) Scan(ctx context.Context) (err error) {
	started := time.Now()
	var files []string
	defer func() {
		s.metrics.ObserveScan(err, len(files), started)
	}()

	files, err = walker.ListFiles(s.cfg.Dir, s.cfg.Pattern)
	if err != nil {
		return fmt.Errorf("list block files: %w", err)
	}
	if len(files) == 0 {
		s.logger.Info("no block files found", zap.String("pattern", s.cfg.Pattern))
		return nil
	}

	return workerpool.Process(ctx, s.cfg.Workers, files, s.ingestFile)
}

func (s *Service) ingestFile(ctx context.Context, path string) error {
	name := filepath.Base(path)
	offset := s.offset(name)

	res, err := s.walker.WalkFile(ctx, path, offset, s.writeBlock)
	if err == nil && offset > 0 && errors.Is(res.Err, walker.ErrOffsetBeyondEnd) {
		s.logger.Warn("file is shorter than its resume offset, reading it again from the start",
			zap.String("file", name),
			zap.Uint64("offset", offset),
		)
		res, err = s.walker.WalkFile(ctx, path, 0, s.writeBlock)
	}
	s.setOffset(name, res.Offset)
	if err != nil {
		return err
	}

	switch {
	case res.Err == nil:
	case s.cfg.Follow && isIncompleteTail(res.Err):
		s.logger.Debug("file ends before a complete block, waiting for more data",
			zap.String("file", name),
			zap.Uint64("offset", res.Offset),
			zap.String("kind", decoder.ErrorKind(res.Err)),
		)
	default:
		s.logger.Warn("decode file stopped early",
			zap.String("file", name),
			zap.Int("blocks", res.Blocks),
			zap.Uint64("offset", res.Offset),
			zap.String("kind", decoder.ErrorKind(res.Err)),
			zap.Error(res.Err),
		)
	}

	if res.Blocks > 0 {
		s.logger.Info("ingested blocks",
			zap.String("file", name),
			zap.Int("blocks", res.Blocks),
			zap.Uint64("bytes", res.Bytes),
			zap.Uint64("offset", res.Offset),
		)
	}
	return nil
}

func (s *Service) writeBlock(ctx context.Context, path string, block *model.Block) error {
	started := time.Now()
	err := s.convertAndWrite(ctx, path, block)
	s.metrics.ObserveWriteBlock(err, started)
	return err
}

func (s *Service) convertAndWrite(ctx context.Context, path string, block *model.Block) error {
	row, err := s.converter.Convert(path, block)
	if err != nil {
		return fmt.Errorf("convert block %s: %w", block.Hash, err)
	}
	if err := s.writer.WriteBlock(ctx, row); err != nil {
		return fmt.Errorf("write block %s: %w", block.Hash, err)
	}
	return nil
}

func (s *Service) offset(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeAt[name]
}

func (s *Service) setOffset(name string, offset uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeAt[name] = offset
}

// Offsets returns a copy of the per-file resume offsets.
func (s *Service) Offsets() map[string]uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.resumeAt)
}

// isIncompleteTail reports errors a node produces while it is still appending to a file:
// a block written only in part, a prefix cut short, or the zero padding it preallocates past the last block.
// Any other bad magic is corruption.
func isIncompleteTail(err error) bool {
	return errors.Is(err, decoder.ErrTruncatedBlock) ||
		errors.Is(err, decoder.ErrShortPrefix) ||
		errors.Is(err, decoder.ErrZeroPadding)
}
