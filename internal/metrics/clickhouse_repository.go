package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

var (
	blkStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_store",
		Name:      "operations_total",
		Help:      "Count of ClickHouse reads and writes of blk tables, by outcome.",
	}, []string{"operation", "network", "status"})

	blkStoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_store",
		Name:      "operation_latency_seconds",
		Help:      "Latency of ClickHouse reads and writes of blk tables.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 13), // 5ms..20s
	}, []string{"operation", "network"})

	blkStoreRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_store",
		Name:      "rows_total",
		Help:      "Rows moved by successful ClickHouse operations.",
	}, []string{"operation", "network"})
)

// ClickhouseRepository records the ClickHouse operations of the blk repository.
type ClickhouseRepository struct{}

// NewClickhouseRepository constructs a ClickhouseRepository.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records one operation that moved rows rows. Rows of a failed operation are not counted.
func (ClickhouseRepository) Observe(operation string, network model.Network, rows int, err error, started time.Time) {
	net := networkLabel(network)

	blkStoreOperationsTotal.WithLabelValues(operation, net, statusLabel(err)).Inc()
	blkStoreOperationLatency.WithLabelValues(operation, net).Observe(time.Since(started).Seconds())
	if err == nil && rows > 0 {
		blkStoreRowsTotal.WithLabelValues(operation, net).Add(float64(rows))
	}
}
