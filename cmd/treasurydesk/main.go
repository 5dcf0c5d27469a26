package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"treasurydesk/internal/app"
	"treasurydesk/internal/config"
)

func main() {
	marketDataPath := flag.String("marketdata", "marketdata.txt", "Market data input file")
	pricesPath := flag.String("prices", "prices.txt", "Prices input file")
	tradesPath := flag.String("trades", "trades.txt", "Trades input file")
	inquiriesPath := flag.String("inquiries", "inquiries.txt", "Inquiries input file")
	outputDir := flag.String("output-dir", "", "Output directory for historical sinks (default from config/defaults)")
	guiThrottleMs := flag.Int("gui-throttle-ms", 0, "GUI throttle window in milliseconds (0=use config/default)")
	guiMaxUpdates := flag.Int("gui-max-updates", 0, "GUI emission cap (0=use config/default)")
	configPath := flag.String("config", "", "Optional JSON config file overriding defaults")
	logLevel := flag.String("log-level", "info", "debug or info prints the start-up line, other values suppress it; other log lines are not filtered")
	profileAddr := flag.String("profile-addr", "", "Pyroscope server address; empty disables profiling")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *guiThrottleMs > 0 {
		cfg.GUIThrottleMillis = *guiThrottleMs
	}
	if *guiMaxUpdates > 0 {
		cfg.GUIMaxUpdates = *guiMaxUpdates
	}

	if *profileAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "treasurydesk",
			ServerAddress:   *profileAddr,
			Tags:            map[string]string{"env": "local"},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() { _ = profiler.Stop() }()
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("output dir create failed: %v", err)
	}

	sinkFiles, closeSinks, err := openSinks(cfg.OutputDir)
	if err != nil {
		log.Fatalf("sink open failed: %v", err)
	}
	defer closeSinks()

	mesh := app.Build(cfg, sinkFiles)

	sourceFiles, closeSources, err := openSources(*marketDataPath, *pricesPath, *tradesPath, *inquiriesPath)
	if err != nil {
		log.Fatalf("source open failed: %v", err)
	}
	defer closeSources()

	logAtLevel(*logLevel, "treasurydesk: starting run")
	select {
	case <-ctx.Done():
		log.Fatalf("interrupted before run started")
	default:
	}

	if err := mesh.RunSources(sourceFiles); err != nil {
		log.Fatalf("run failed: %v", err)
	}

	snapshot := mesh.Metrics.Snapshot()
	logs.Infof("treasurydesk: run complete executions=%d trades=%d positions=%d risk=%d inquiries=%d gui=%d parse_errors=%d persisted=%d",
		snapshot.Executions, snapshot.Trades, snapshot.Positions, snapshot.RiskAdds,
		snapshot.Inquiries, snapshot.GUIEmits, snapshot.ParseErrs, snapshot.Persisted)
}

func logAtLevel(level, msg string) {
	switch level {
	case "debug", "info":
		logs.Info(msg)
	default:
	}
}
