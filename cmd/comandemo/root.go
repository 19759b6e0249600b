package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "comandemo",
	Short: "Run demonstration scenarios on the coman scheduler.",
	Long: `Comandemo runs small demonstration scenarios on the coman ` +
		`cooperative scheduler. Each scenario builds a scheduler, starts a ` +
		`few tasks, and drives the virtual clock from the command line ` +
		`options.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Optional defaults from a .env file, e.g. COMAN_MONITOR_PORT.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
