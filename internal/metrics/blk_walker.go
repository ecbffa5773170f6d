// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

var (
	blkWalkerFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "files_total",
		Help:      "Count of blk files walked.",
	}, []string{"network", "status"})

	blkWalkerFileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "file_duration_seconds",
		Help:      "Duration of walking a single blk file.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"network", "status"})

	blkWalkerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "blocks_total",
		Help:      "Count of decoded blocks.",
	}, []string{"network"})

	blkWalkerBlockBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "block_bytes_total",
		Help:      "Bytes of decoded blocks, file prefix included.",
	}, []string{"network"})

	blkWalkerDecodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "decode_errors_total",
		Help:      "Count of blk files whose decoding stopped on an error, by error kind.",
	}, []string{"network", "kind"})
)

// BlkWalker tracks metrics for decoding blk files.
type BlkWalker struct {
	network model.Network
}

// NewBlkWalker constructs a BlkWalker with defaults.
func NewBlkWalker(network model.Network) *BlkWalker {
	return &BlkWalker{network: model.Network(networkLabel(network))}
}

// ObserveFile records the outcome and duration of walking one file.
func (m BlkWalker) ObserveFile(err error, started time.Time) {
	status := statusLabel(err)
	blkWalkerFilesTotal.WithLabelValues(string(m.network), status).Inc()
	blkWalkerFileDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveBlock records one decoded block of size bytes.
func (m BlkWalker) ObserveBlock(size uint64) {
	blkWalkerBlocksTotal.WithLabelValues(string(m.network)).Inc()
	blkWalkerBlockBytesTotal.WithLabelValues(string(m.network)).Add(float64(size))
}

// ObserveDecodeError records a decode failure of the given kind.
func (m BlkWalker) ObserveDecodeError(kind string) {
	if kind == "" {
		kind = unknownLabel
	}
	blkWalkerDecodeErrorsTotal.WithLabelValues(string(m.network), kind).Inc()
}
