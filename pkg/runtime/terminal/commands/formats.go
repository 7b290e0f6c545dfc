package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/playbill/pkg/render"
	"github.com/spf13/cobra"
)

func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported statement formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(render.DefaultRegistry("").Formats(), "\n"))
			return nil
		},
	}
}
