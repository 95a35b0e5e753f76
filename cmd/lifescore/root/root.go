package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifescore/internal/config"
	"lifescore/internal/ui"
)

const Version = "0.1.0"

var (
	configPath string
	appConfig  *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "lifescore",
	Short:         "Life Score — daily check-ins with RPG progression",
	Long:          "Life Score rates six life dimensions once a day and turns them into a score, XP, levels, streaks and fatigue.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.lifescore/config.toml)")

	rootCmd.AddCommand(
		newCheckInCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newDimsCmd(),
		newBoardCmd(),
		newExportCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
