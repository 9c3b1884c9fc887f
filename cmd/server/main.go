// Command server runs the matching engine. Request lines come from
// an actions file (or stdin with -actions -) and, when enabled, a
// gRPC endpoint; responses for the file path go to stdout.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"mimir/api/grpcserver"
	"mimir/api/pb"
	"mimir/config"
	"mimir/engine"
	"mimir/infra/kafka"
	"mimir/infra/outbox"
	"mimir/jobs/broadcaster"
	"mimir/pkg/logger"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to server.yaml (default: ./config/server.yaml)")
		actionsPath = flag.String("actions", "", "request line file to process, '-' for stdin")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Service, cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []engine.Option
	var ob *outbox.Outbox
	if cfg.Feed.Enabled {
		ob, err = outbox.Open(cfg.Feed.OutboxDir)
		if err != nil {
			log.Fatal("open outbox", zap.String("dir", cfg.Feed.OutboxDir), zap.Error(err))
		}
		defer ob.Close()
		opts = append(opts, engine.WithTradeSink(broadcaster.NewJournal(ob, log)))
	}

	eng := engine.New(opts...)

	go runEpochs(ctx, eng, cfg.EpochInterval)

	if cfg.Feed.Enabled {
		pub, err := newPublisher(cfg.Feed)
		if err != nil {
			log.Fatal("connect feed", zap.Strings("brokers", cfg.Feed.Brokers), zap.Error(err))
		}
		defer pub.Close()

		bc := broadcaster.New(ob, pub, cfg.Feed.Interval, log)
		go bc.Run(ctx)
		log.Info("trade feed enabled",
			zap.String("driver", cfg.Feed.Driver),
			zap.String("topic", cfg.Feed.Topic),
		)
	}

	if *actionsPath != "" {
		if err := runActions(eng, *actionsPath); err != nil {
			log.Fatal("process actions", zap.String("path", *actionsPath), zap.Error(err))
		}
	}

	if cfg.GRPC.Enabled {
		if err := serveGRPC(ctx, eng, cfg.GRPC.Addr, log); err != nil {
			log.Fatal("grpc server", zap.Error(err))
		}
	}

	log.Info("shutdown complete")
}

// runEpochs ticks the reclamation clock so retired order objects
// return to the arena once no snapshot can still observe them.
func runEpochs(ctx context.Context, eng *engine.Engine, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eng.AdvanceEpoch()
		}
	}
}

func newPublisher(cfg config.FeedConfig) (broadcaster.Publisher, error) {
	if cfg.Driver == "segmentio" {
		return kafka.NewProducer(cfg.Brokers, cfg.Topic), nil
	}
	return broadcaster.NewSaramaPublisher(cfg.Brokers, cfg.Topic)
}

func runActions(eng *engine.Engine, path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		for _, line := range eng.Apply(sc.Text()) {
			fmt.Fprintln(w, line)
		}
	}
	return sc.Err()
}

func serveGRPC(ctx context.Context, eng *engine.Engine, addr string, log *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	pb.RegisterEngineServer(srv, grpcserver.NewServer(eng, log))

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	log.Info("grpc listening", zap.String("addr", addr))
	return srv.Serve(lis)
}
