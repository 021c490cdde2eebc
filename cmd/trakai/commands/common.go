package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/trakai/internal/config"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	// Out receives user-facing output. Logs go to stderr.
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Path    string           `short:"p" help:"Site root that relative paths resolve against" default:"."`
	Config  string           `short:"c" help:"Configuration file (default: resources/trakai.json under the site root)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"1" help:"Build the blog (default command)"`
	Init  InitCmd  `cmd:"" help:"Write a default configuration file"`
	List  ListCmd  `cmd:"" help:"List content records without writing output"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	if g.Out == nil {
		g.Out = os.Stdout
	}
	return nil
}

// LoadConfig resolves the configuration selected by the global flags.
func (c *CLI) LoadConfig() (*config.Config, error) {
	return config.Load(config.LoadOptions{SitePath: c.Path, File: c.Config})
}
