package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/multiquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "multiquiz",
	Short: "Multiple-answer quiz in the terminal",
	Long: `Multiquiz runs a multiple-answer quiz with partial credit.

Each correct option picked earns 0.25 points and each incorrect one costs
0.25 points. Questions are read from a JSON file or a SQLite bank.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("questions", "", "Path to the question set (.json, .db, .sqlite, .sqlite3)")
	flags.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/multiquiz/config.yaml)")
	flags.String("log-file", "", "Path to the log file (default $XDG_STATE_HOME/multiquiz/multiquiz.log)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("no-shuffle", false, "Present questions in file order")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration using the --config flag, MULTIQUIZ_*
// environment variables and the remaining persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}
