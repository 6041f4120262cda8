package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/shirou/gopsutil/cpu"

	"pdfcracker/internal/adapter/pdf"
	"pdfcracker/internal/config"
	"pdfcracker/internal/core/domain"
	"pdfcracker/internal/core/search"
	"pdfcracker/internal/core/validate"
	"pdfcracker/internal/pkg/metrics"
)

// Exit codes: a found password, true exhaustion, bad arguments and an
// incomplete search are all distinguishable from scripts.
const (
	exitFound     = 0
	exitExhausted = 1
	exitUsage     = 2
	exitFailed    = 3
)

// All command-line arguments
var (
	Prefix     = flag.String("prefix", "", "Fixed first 5 digits of the password")
	Suffix     = flag.String("suffix", "", "Fixed last 6 digits of the password, must be a valid date in the format DDMMYY")
	Workers    = flag.Int("workers", 0, "Number of search workers (default: logical CPU count)")
	Interval   = flag.Int("interval", 0, "Seconds between progress reports (default: 20)")
	ConfigPath = flag.String("config", "", "Path to an optional YAML config file")
	MetricsLog = flag.String("metrics-log", "", "Path for an optional JSON metrics log")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "USAGE: %s [OPTION]... FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		pterm.Error.Println("provide exactly one target PDF file")
		flag.Usage()
		return exitUsage
	}
	path := flag.Arg(0)

	cfg, err := config.Load(*ConfigPath)
	if err != nil {
		pterm.Error.Printf("failed to load config: %s\n", err)
		return exitUsage
	}
	if *Workers > 0 {
		cfg.Workers = *Workers
	}
	if *Interval > 0 {
		cfg.ProgressIntervalSeconds = *Interval
	}
	if *MetricsLog != "" {
		cfg.MetricsLog = *MetricsLog
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkerCount()
	}

	fixed, err := validate.FixedPart(*Prefix, *Suffix)
	if err != nil {
		pterm.Error.Printf("invalid arguments: %s\n", err)
		flag.Usage()
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reporter *metrics.Reporter
	if cfg.MetricsLog != "" {
		reporter, err = metrics.NewReporter(cfg.MetricsLog)
		if err != nil {
			pterm.Error.Printf("failed to open metrics log: %s\n", err)
			return exitUsage
		}
		defer reporter.Close()
	}

	collector := metrics.NewCollector(cfg.ProgressInterval())
	collector.Start()
	defer collector.Stop()

	total := search.SpaceSize(fixed.VariableLen())
	pterm.Info.Printf("Searching %d candidates across %d workers (%s %q)\n",
		total, cfg.Workers, fixedPartLabel(fixed), fixed.Digits)

	coordinator := search.NewCoordinator(pdf.NewOpener(), search.Config{
		DocumentPath:     path,
		Workers:          cfg.Workers,
		ProgressInterval: cfg.ProgressInterval(),
		StallTimeout:     cfg.StallTimeout(),
		OnProgress: func(attempts int64) {
			pterm.Info.Printf("Total attempts so far: %d\n", attempts)
			if reporter != nil {
				_ = reporter.Record("progress", collector.Snapshot(attempts))
			}
		},
	})

	var outcome domain.SearchOutcome
	var runErr error
	perf := metrics.CapturePerformance(func() {
		outcome, runErr = coordinator.Run(ctx, fixed)
	})
	if runErr != nil {
		pterm.Error.Printf("invalid arguments: %s\n", runErr)
		flag.Usage()
		return exitUsage
	}

	if reporter != nil {
		_ = reporter.Record("run", perf)
		_ = reporter.Record("outcome", outcome)
	}

	switch outcome.Kind {
	case domain.OutcomeFound:
		pterm.Success.Printf("Password found: %s (%d attempts in %s)\n",
			outcome.Password, outcome.Attempts, outcome.Elapsed.Round(time.Second))
		return exitFound
	case domain.OutcomeExhausted:
		pterm.Warning.Printf("Password not found. Exhausted all %d combinations.\n", outcome.Attempts)
		return exitExhausted
	default:
		pterm.Error.Printf("Search could not complete: %s\n", outcome.Err)
		return exitFailed
	}
}

func fixedPartLabel(fixed domain.FixedPart) string {
	if fixed.Kind == domain.FixedPrefix {
		return "prefix"
	}
	return "suffix"
}

func defaultWorkerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
