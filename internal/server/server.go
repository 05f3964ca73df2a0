// Package server is the composition root for the enfgen MCP server. It
// wires configuration, logging, the class index, and every tool
// registration. No generation logic lives here.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/goliatone/go-enfgen/internal/config"
	"github.com/goliatone/go-enfgen/internal/ctxlog"
	"github.com/goliatone/go-enfgen/internal/tools"
	"github.com/goliatone/go-enfgen/pkg/index"
)

// New assembles the MCP server from the supplied configuration. The
// returned logger writes to stderr; stdout stays reserved for the
// protocol stream.
func New(cfg config.Config) (*server.MCPServer, *slog.Logger) {
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	store := index.Load(indexOptions(cfg, logger)...)
	logger.Debug("class index ready", "classes", store.ClassCount(), "pages", store.PageCount())

	s := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
		server.WithToolHandlerMiddleware(requestLogger(logger)),
	)

	projectTool := tools.NewProjectTool()
	s.AddTool(projectTool.Definition(), projectTool.Handle)

	configTool := tools.NewConfigTool()
	s.AddTool(configTool.Definition(), configTool.Handle)

	stringtableTool := tools.NewStringtableTool()
	s.AddTool(stringtableTool.Definition(), stringtableTool.Handle)

	guidTool := tools.NewGUIDTool()
	s.AddTool(guidTool.Definition(), guidTool.Handle)

	classesTool := tools.NewClassesTool(store)
	s.AddTool(classesTool.Definition(), classesTool.Handle)

	wikiTool := tools.NewWikiTool(store)
	s.AddTool(wikiTool.Definition(), wikiTool.Handle)

	return s, logger
}

// Run assembles the server and serves the stdio transport until the
// client disconnects or the process is signalled.
func Run(cfg config.Config) error {
	s, logger := New(cfg)
	logger.Info("serving MCP over stdio", "name", cfg.Server.Name, "version", cfg.Server.Version)

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("server: serve stdio: %w", err)
	}
	return nil
}

// requestLogger stores a logger annotated with the tool name in the
// request context, where handlers pick it up through ctxlog.
func requestLogger(logger *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx = ctxlog.WithLogger(ctx, logger.With("tool", req.Params.Name))
			return next(ctx, req)
		}
	}
}

func indexOptions(cfg config.Config, logger *slog.Logger) []index.Option {
	opts := []index.Option{index.WithLogger(logger)}
	if cfg.Index.Dir != "" {
		opts = append(opts, index.WithFS(os.DirFS(cfg.Index.Dir)))
	}
	if cfg.Index.Classes != "" {
		opts = append(opts, index.WithClassesPath(cfg.Index.Classes))
	}
	if cfg.Index.Wiki != "" {
		opts = append(opts, index.WithWikiPath(cfg.Index.Wiki))
	}
	return opts
}

// serverInstructions tells connected assistants how to use the tools.
func serverInstructions() string {
	return `You have access to enfgen, a generator for Enfusion engine text
artifacts used in Arma Reforger modding.

## Tools
- generate_project: complete .gproj project definition. The base game
  dependency and the PC and HEADLESS configurations are always included.
- generate_config: .conf class definition with ordered properties and
  nested component blocks.
- generate_stringtable: localization stringtable XML. Language names use
  the engine spelling (English, French, Chinesesimp, ...).
- generate_guid: engine compatible GUIDs, 16 uppercase hex characters.
- search_classes: look up engine classes by name fragment before
  referencing them in a config.
- search_wiki: find official modding wiki pages with links.

## Usage notes
- Write tool output to disk verbatim. Documents are deterministic and end
  with a trailing newline; do not reformat them.
- Reuse a project GUID once generated. Regenerating produces a different
  identifier and breaks references from other projects.
- When unsure about a class name, call search_classes instead of guessing.`
}
