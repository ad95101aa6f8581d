package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debug      bool
	configPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "ws",
	Short: "Securely erase files, folders, and free disk space",
	Long: `WinShred - secure data erasure for Windows.

Overwrites file content and free disk space with industry-standard wipe
patterns (single pass, DoD 5220.22-M 3/7 pass, Gutmann) so that deleted
data cannot be recovered by forensic tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a profiles config file")

	// Register all subcommands
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(freespaceCmd)
	rootCmd.AddCommand(drivesCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
