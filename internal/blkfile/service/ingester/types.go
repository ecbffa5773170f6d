package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/walker"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockWalker interface {
		WalkFile(ctx context.Context, path string, offset uint64, fn walker.BlockFunc) (walker.FileResult, error)
	}
	BlockConverter interface {
		Convert(file string, block *model.Block) (model.InsertBlock, error)
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop() error
		WriteBlock(ctx context.Context, b model.InsertBlock) error
	}
	OffsetSource interface {
		FileOffsets(ctx context.Context, network model.Network) (map[string]uint64, error)
	}
	ClickhouseRepository interface {
		InsertBlocks(ctx context.Context, blocks []model.BlockRow) error
		InsertTransactions(ctx context.Context, txs []model.TransactionRow) error
		InsertTransactionInputs(ctx context.Context, inputs []model.InputRow) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.OutputRow) error
	}
	Metrics interface {
		ObserveScan(err error, files int, started time.Time)
		ObserveWriteBlock(err error, started time.Time)
	}
)
