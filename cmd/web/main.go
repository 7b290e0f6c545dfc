package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/playbill/pkg/observability/metrics"
	"github.com/de-tools/playbill/pkg/render"
	"github.com/de-tools/playbill/pkg/server"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/config"
	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/de-tools/playbill/pkg/services/statement"
	"github.com/de-tools/playbill/pkg/store/source"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/databricks/databricks-sql-go"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/snowflakedb/gosnowflake"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the playbill statement API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a playbill config file (PLAYBILL_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	money, err := render.NewMoneyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := statement.NewService(
		pricing.NewDefaultRegistry(cfg.Pricing),
		render.DefaultRegistry(cfg.Currency),
		money,
		metrics.New(reg),
	)

	// Requests may carry their own plays, so a missing catalog is not fatal.
	opener := source.NewOpener(source.WithAWSProfile(cfg.AWS.Profile), source.WithAWSRegion(cfg.AWS.Region))
	var plays catalog.Catalog
	m, err := catalog.Open(ctx, cfg.Catalog, opener, nil)
	switch {
	case errors.Is(err, catalog.ErrNoCatalog):
		logger.Warn().Msg("no play catalog configured, requests must include plays")
	case err != nil:
		return fmt.Errorf("failed to load play catalog: %w", err)
	default:
		logger.Info().Int("plays", m.Len()).Msg("play catalog loaded")
		plays = m
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Statements:    svc,
			Catalog:       plays,
			DefaultFormat: cfg.Format,
			Logger:        logger,
			Gatherer:      reg,
		},
	})

	return api.Start()
}
