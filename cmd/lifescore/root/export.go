package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifescore/internal/engine"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the player data as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var data []byte
			switch strings.ToLower(format) {
			case "json":
				data, err = svc.Export(ctx)
			case "yaml", "yml":
				var p *engine.PlayerData
				if p, err = svc.Load(ctx); err == nil {
					data, err = engine.MarshalPlayerYAML(p)
				}
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "json", "Output format: json or yaml")
	return cmd
}
