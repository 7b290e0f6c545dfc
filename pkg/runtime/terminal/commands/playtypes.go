package commands

import (
	"fmt"

	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/spf13/cobra"
)

type PlayTypesCmd struct {
	configPath string
}

func NewPlayTypesCmd() *cobra.Command {
	pc := &PlayTypesCmd{}
	cmd := &cobra.Command{
		Use:   "play-types",
		Short: "List the play types that can be priced",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "", "Path to a playbill config file")

	return cmd
}

func (pc *PlayTypesCmd) run(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadConfig(cmd.Context(), pc.configPath)
	if err != nil {
		return err
	}

	for _, playType := range pricing.NewDefaultRegistry(cfg.Pricing).PlayTypes() {
		fmt.Fprintln(cmd.OutOrStdout(), playType)
	}
	return nil
}
