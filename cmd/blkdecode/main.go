package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/convert"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/walker"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/metrics"
)

type config struct {
	BlocksDir      string        `long:"blocks-dir" env:"BLKDECODE_BLOCKS_DIR" description:"directory holding blk*.dat files" required:"true"`
	Pattern        string        `long:"pattern" env:"BLKDECODE_PATTERN" description:"glob selecting block files" default:"blk*.dat"`
	Network        model.Network `long:"network" env:"BLKDECODE_NETWORK" description:"network the files belong to" default:"mainnet" choice:"mainnet" choice:"testnet3" choice:"regtest" choice:"signet"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"BLKDECODE_CLICKHOUSE_DSN" description:"ClickHouse DSN; blocks are only logged when empty"`
	Workers        int           `long:"workers" env:"BLKDECODE_WORKERS" description:"files decoded in parallel" default:"1"`
	Follow         bool          `long:"follow" env:"BLKDECODE_FOLLOW" description:"keep rescanning for blocks appended by the node"`
	FollowInterval time.Duration `long:"follow-interval" env:"BLKDECODE_FOLLOW_INTERVAL" description:"delay between rescans in follow mode" default:"30s"`
	IgnoreWitness  bool          `long:"ignore-witness" env:"BLKDECODE_IGNORE_WITNESS" description:"read transactions as pre-segwit and only flag suspected witness data"`
	StrictSize     bool          `long:"strict-size" env:"BLKDECODE_STRICT_SIZE" description:"reject blocks whose content is shorter than the declared size"`
	Check          bool          `long:"check" env:"BLKDECODE_CHECK" description:"decode every file once, write nothing and fail if any file is corrupt"`
	Trace          bool          `long:"trace" env:"BLKDECODE_TRACE" description:"log every decoded field"`
	MetricsAddr    string        `long:"metrics-addr" env:"BLKDECODE_METRICS_ADDR" description:"address for metrics server, empty disables it" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("blk decoder failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	magic, err := decoder.MagicForNetwork(cfg.Network)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	decCfg := decoder.Config{
		Magic:      magic,
		StrictSize: cfg.StrictSize,
	}
	if cfg.IgnoreWitness {
		decCfg.Witness = decoder.WitnessIgnore
	}
	if cfg.Trace {
		decCfg.Sink = decoder.NewLoggerSink(logger.Named("trace"))
	}

	blockWalker := walker.New(decoder.New(decCfg), metrics.NewBlkWalker(cfg.Network), logger.Named("walker"))
	if cfg.Check {
		return check(ctx, blockWalker, cfg.BlocksDir, cfg.Pattern, logger.Named("check"))
	}

	var (
		writer  ingester.BlockWriter
		offsets ingester.OffsetSource
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		writer = ingester.NewClickhouseBlockWriter(repo, logger.Named("clickhouseWriter"))
		offsets = repo
	} else {
		writer = ingester.NewLogBlockWriter(logger.Named("blocks"))
	}

	svc, err := ingester.NewService(
		ingester.Config{
			Network:        cfg.Network,
			Dir:            cfg.BlocksDir,
			Pattern:        cfg.Pattern,
			Workers:        cfg.Workers,
			Follow:         cfg.Follow,
			FollowInterval: cfg.FollowInterval,
		},
		blockWalker,
		convert.NewConverter(cfg.Network),
		writer,
		offsets,
		metrics.NewBlkIngester(cfg.Network),
		logger.Named("ingester"),
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
