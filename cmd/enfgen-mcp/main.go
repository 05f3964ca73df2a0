package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/goliatone/go-enfgen/internal/config"
	"github.com/goliatone/go-enfgen/internal/server"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cfgPath := flag.String("config", "", "path to a YAML configuration file")
	logLevel := flag.String("log-level", "", "override the configured log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("enfgen-mcp %s\n", version)
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := server.Run(cfg); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
