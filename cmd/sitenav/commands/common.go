package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitenav/internal/config"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// Global carries shared state into subcommands.
type Global struct {
	Logger *slog.Logger
	// Out receives command output; stdout when nil.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitenav.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Load and validate the configuration"`
	Show     ShowCmd     `cmd:"" help:"Print the navigation and sidebar trees"`
	Export   ExportCmd   `cmd:"" help:"Write the configuration for a static site generator"`
	Init     InitCmd     `cmd:"" help:"Write the canonical GyroCycle configuration"`
	Links    LinksCmd    `cmd:"" help:"Check navigation links against the docs directory"`
	Watch    WatchCmd    `cmd:"" help:"Reload the configuration on change and serve metrics"`
	Ver      VersionCmd  `cmd:"" name:"version" help:"Print version information"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func loadConfig(root *CLI) (*site.Config, error) {
	return config.Load(root.Config)
}
