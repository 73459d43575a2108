package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thruflo/cookieserver/internal/config"
	"github.com/thruflo/cookieserver/internal/logging"
	"github.com/thruflo/cookieserver/internal/server"
)

var (
	serveConfigPath string
	serveHost       string
	servePort       int
	serveLogLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the name-remembering HTTP server",
	Long: `Starts the HTTP server and runs until interrupted.

GET on any path renders the form with a greeting. POST on any path with a
yourname form field sets the name cookie and redirects to /.

Flags override values read from --config.

Example:
  cookieserver serve
  cookieserver serve --port 9000 --log-level debug
  cookieserver serve --config cookieserver.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to YAML config file")
	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "interface to listen on")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "port to listen on")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
}

// loadServeConfig reads --config and applies any flags the user set.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = serveLogLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.SetLevel(level)

	srv, err := server.NewServerFromConfig(cfg, logging.Default())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s/\n", srv.Addr())
	return srv.Start(ctx)
}
