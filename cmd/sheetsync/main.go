package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arubero/mlb-nrsi-prediction/internal/client"
	"github.com/arubero/mlb-nrsi-prediction/internal/config"
	"github.com/arubero/mlb-nrsi-prediction/internal/pipeline"
	"github.com/arubero/mlb-nrsi-prediction/internal/resolver"
	"github.com/arubero/mlb-nrsi-prediction/internal/sheets"
	"github.com/arubero/mlb-nrsi-prediction/internal/stats"
)

const (
	inputDateLayout = "02/01/2006" // DD/MM/YYYY as entered
	apiDateLayout   = "01/02/2006" // MM/DD/YYYY as the Stats API expects
)

func main() {
	var startDate, endDate string

	rootCmd := &cobra.Command{
		Use:   "sheetsync",
		Short: "Sync MLB probable-pitcher stats for a date range into a Google Sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(startDate, endDate)
		},
	}

	rootCmd.Flags().StringVar(&startDate, "start", "", "start date (DD/MM/YYYY)")
	rootCmd.Flags().StringVar(&endDate, "end", "", "end date (DD/MM/YYYY)")
	_ = rootCmd.MarkFlagRequired("start")
	_ = rootCmd.MarkFlagRequired("end")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(startInput, endInput string) error {
	setupLogger()

	start, err := parseInputDate(startInput)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startInput, err)
	}
	end, err := parseInputDate(endInput)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endInput, err)
	}

	log.Info().
		Str("start", start).
		Str("end", end).
		Msg("Starting probable-pitcher sheet sync")

	cfg := config.MustLoad()
	log.Info().
		Str("env", cfg.AppEnv).
		Int("season", cfg.Season).
		Str("sheet_tab", cfg.SheetTab).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal, cancelling run...")
		cancel()
	}()

	if cfg.EnableMetrics {
		go startMetricsServer(cfg.MetricsPort)
	}

	api := client.NewClient(cfg.StatsAPIBaseURL, cfg.StatsAPITimeout)

	games, err := api.FetchSchedule(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}
	log.Info().Int("count", len(games)).Msg("Schedule fetched")

	ids := resolver.New(api, cfg.Season)
	retriever := stats.New(api, cfg.Season, cfg.StatsRetries, cfg.StatsBackoff)
	assembler := pipeline.NewAssembler(ids, retriever, cfg.GamePause)

	rows := assembler.Assemble(ctx, games)
	log.Info().
		Int("rows", len(rows)).
		Int("players_resolved", ids.CacheSize()).
		Msg("Rows assembled")

	writer, err := sheets.NewWriter(ctx, cfg.CredentialsFile, cfg.SheetID, cfg.ClearRange(), cfg.WriteRange())
	if err != nil {
		return fmt.Errorf("failed to create sheet writer: %w", err)
	}

	if err := writer.Write(ctx, rows); err != nil {
		// Destination failures end the run but never crash the process.
		log.Error().Err(err).Msg("Sheet write failed")
		return nil
	}

	log.Info().Msg("Sheet sync complete")
	return nil
}

// parseInputDate validates a DD/MM/YYYY date and rewrites it in the
// MM/DD/YYYY form the Stats API expects.
func parseInputDate(input string) (string, error) {
	t, err := time.Parse(inputDateLayout, input)
	if err != nil {
		return "", fmt.Errorf("expected DD/MM/YYYY: %w", err)
	}
	return t.Format(apiDateLayout), nil
}

func setupLogger() {
	// Pretty console logging in development
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	// Set log level
	level := zerolog.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsedLevel, err := zerolog.ParseLevel(lvl)
		if err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)
}

func startMetricsServer(port int) {
	http.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	log.Info().Int("port", port).Msg("Starting metrics server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error().Err(err).Msg("Metrics server failed")
	}
}
