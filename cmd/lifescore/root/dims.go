package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lifescore/internal/engine"
	"lifescore/internal/ui"
)

func newDimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dims [dimension]",
		Short: "List the six rated dimensions, or show one by key or stat (e.g. str)",
		Args:  cobra.MaximumNArgs(1),
		// The catalog is static; no config or database needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				key, err := engine.ParseDimension(args[0])
				if err != nil {
					return err
				}
				d, _ := key.Info()
				printDimension(out, d)
				return nil
			}
			for _, d := range engine.Dimensions() {
				printDimension(out, d)
			}
			return nil
		},
	}
}

func printDimension(out io.Writer, d engine.Dimension) {
	fmt.Fprintf(out, "%s %s %s %s\n", d.Icon, ui.Key.Render(string(d.Key)), ui.Muted.Render("("+strings.ToUpper(string(d.Stat))+")"), d.FullLabel)
	fmt.Fprintf(out, "   %s\n", ui.Muted.Render(d.Description))
}
