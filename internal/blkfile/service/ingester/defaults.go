package ingester

import "time"

const (
	defaultWorkerCount    = 1
	defaultFollowInterval = 30 * time.Second

	transactionFlushThreshold = 10_000
	outputFlushThreshold      = 50_000
	inputFlushThreshold       = 50_000

	blockBatcherCapacity      = 100
	blockBatcherFlushInterval = 5 * time.Second
	blockBatcherRPS           = 20
)
