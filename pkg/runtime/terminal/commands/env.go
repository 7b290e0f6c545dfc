package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/playbill/pkg/render"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/config"
	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/de-tools/playbill/pkg/services/statement"
	"github.com/rs/zerolog"
)

// Env carries what commands share with the process that runs them.
type Env struct {
	OpenDB catalog.OpenDB
}

func loadConfig(ctx context.Context, path string) (context.Context, config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, config.Config{}, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ctx, config.Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.Ctx(ctx).Level(level)
	return logger.WithContext(ctx), cfg, nil
}

func newService(cfg config.Config) (*statement.Service, error) {
	money, err := render.NewMoneyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, err
	}
	return statement.NewService(
		pricing.NewDefaultRegistry(cfg.Pricing),
		render.DefaultRegistry(cfg.Currency),
		money,
		nil,
	), nil
}
