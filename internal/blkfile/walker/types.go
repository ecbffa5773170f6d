package walker

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveFile(err error, started time.Time)
		ObserveBlock(size uint64)
		ObserveDecodeError(kind string)
	}
)

// BlockFunc receives every decoded block of a walk. A returned error aborts the walk.
type BlockFunc func(ctx context.Context, path string, block *model.Block) error
