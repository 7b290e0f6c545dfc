package commands

import (
	"fmt"

	"github.com/de-tools/playbill/pkg/runtime/terminal/export"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/store/invoices"
	"github.com/de-tools/playbill/pkg/store/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type StatementCmd struct {
	env           Env
	configPath    string
	invoicesPath  string
	playsPath     string
	format        string
	catalogDriver string
	catalogDSN    string
	catalogTable  string
	outputDir     string
}

func NewStatementCmd(env Env) *cobra.Command {
	sc := &StatementCmd{env: env}
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the statement of every invoice in a document",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to a playbill config file")
	cmd.Flags().StringVar(&sc.invoicesPath, "invoices", "", "Invoices document: a path, - for stdin, or s3://bucket/key")
	cmd.Flags().StringVar(&sc.playsPath, "plays", "", "Plays catalog document (.json, .yaml or .ini)")
	cmd.Flags().StringVar(&sc.format, "format", "", "Output format (see the formats command)")
	cmd.Flags().StringVar(&sc.catalogDriver, "catalog-driver", "", "Read plays from SQL using this driver (pgx, databricks, snowflake)")
	cmd.Flags().StringVar(&sc.catalogDSN, "catalog-dsn", "", "Data source name for --catalog-driver")
	cmd.Flags().StringVar(&sc.catalogTable, "catalog-table", "", "Plays table name")
	cmd.Flags().StringVar(&sc.outputDir, "output-dir", "", "Write one file per statement into this directory")

	_ = cmd.MarkFlagRequired("invoices")

	return cmd
}

func (sc *StatementCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cfg, err := loadConfig(cmd.Context(), sc.configPath)
	if err != nil {
		return err
	}
	logger := zerolog.Ctx(ctx)

	if sc.format != "" {
		cfg.Format = sc.format
	}
	if sc.playsPath != "" {
		cfg.Catalog.Path = sc.playsPath
	}
	if sc.catalogDriver != "" {
		cfg.Catalog.Driver = sc.catalogDriver
		cfg.Catalog.DSN = sc.catalogDSN
	}
	if sc.catalogTable != "" {
		cfg.Catalog.Table = sc.catalogTable
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}
	if _, err := svc.Renderer(cfg.Format); err != nil {
		return err
	}

	opener := source.NewOpener(
		source.WithAWSProfile(cfg.AWS.Profile),
		source.WithAWSRegion(cfg.AWS.Region),
		source.WithStdin(cmd.InOrStdin()),
	)

	plays, err := catalog.Open(ctx, cfg.Catalog, opener, sc.env.OpenDB)
	if err != nil {
		return fmt.Errorf("failed to load plays: %w", err)
	}

	docs, err := invoices.Load(ctx, opener, sc.invoicesPath)
	if err != nil {
		return fmt.Errorf("failed to load invoices: %w", err)
	}

	reporter := export.NewReporter(cmd.OutOrStdout(), svc, sc.outputDir)
	for _, invoice := range docs {
		stmt, err := svc.Generate(ctx, invoice, plays)
		if err != nil {
			return err
		}

		path, err := reporter.Handle(ctx, stmt, cfg.Format)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Info().Str("customer", stmt.Customer()).Str("file", path).Msg("statement written")
		}
	}

	return nil
}
