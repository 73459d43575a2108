package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cookieserver",
	Short: "HTTP server that remembers your name in a cookie",
	Long: `cookieserver serves a small HTML form. Submit your name and the server
stores it in a cookie; come back within ten minutes and it greets you by name.
The server keeps no state of its own.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("cookieserver version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
