package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-enfgen/internal/config"
	"github.com/goliatone/go-enfgen/internal/server"
)

var (
	serveConfigPath string
	serveLogLevel   string
)

func init() {
	cmd := newServeCmd()
	cmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.AddCommand(cmd)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generators as MCP tools over stdio",
		Long: `The serve command runs the MCP server on stdin/stdout. Logs go to
stderr so the protocol stream stays clean. Point an MCP client at this
subcommand to use the generate and search tools from an assistant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}
	return server.Run(cfg)
}
