package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

var (
	blkIngesterScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_ingestor",
		Name:      "scan_total",
		Help:      "Count of scans over the blocks directory.",
	}, []string{"network", "status"})

	blkIngesterScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_ingestor",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a scan over the blocks directory.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"network", "status"})

	blkIngesterScanFiles = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_ingestor",
		Name:      "scan_files",
		Help:      "Number of files visited per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"network"})

	blkIngesterWriteBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_ingestor",
		Name:      "write_block_duration_seconds",
		Help:      "Duration of converting and writing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// BlkIngester tracks metrics for the blk file ingester.
type BlkIngester struct {
	network model.Network
}

// NewBlkIngester constructs a BlkIngester with defaults.
func NewBlkIngester(network model.Network) *BlkIngester {
	return &BlkIngester{network: model.Network(networkLabel(network))}
}

// ObserveScan records a scan over files and its outcome.
func (m BlkIngester) ObserveScan(err error, files int, started time.Time) {
	status := statusLabel(err)
	blkIngesterScanTotal.WithLabelValues(string(m.network), status).Inc()
	blkIngesterScanDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	blkIngesterScanFiles.WithLabelValues(string(m.network)).Observe(float64(files))
}

// ObserveWriteBlock records converting and writing one block.
func (m BlkIngester) ObserveWriteBlock(err error, started time.Time) {
	blkIngesterWriteBlockDuration.WithLabelValues(string(m.network), statusLabel(err)).
		Observe(time.Since(started).Seconds())
}
