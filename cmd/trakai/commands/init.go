package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/trakai/internal/config"
	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/render"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force     bool `help:"Overwrite existing files"`
	Templates bool `help:"Also write starter templates into templates_path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	sitePath, err := filepath.Abs(root.Path)
	if err != nil {
		return err
	}
	cfgPath := root.Config
	if cfgPath == "" {
		cfgPath = config.DefaultConfigFile
	}
	if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(sitePath, cfgPath)
	}
	return RunInit(g, sitePath, cfgPath, i.Force, i.Templates)
}

// RunInit writes the default configuration and, optionally, the starter
// templates and an empty posts directory.
func RunInit(g *Global, sitePath, cfgPath string, force, templates bool) error {
	if err := config.Init(cfgPath, force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "Wrote configuration to %s\n", cfgPath)

	if !templates {
		return nil
	}
	cfg := config.Defaults()
	cfg.SitePath = sitePath
	written, err := render.WriteDefaults(cfg.TemplatesDir(), force)
	if err != nil {
		return err
	}
	for _, f := range written {
		_, _ = fmt.Fprintf(g.Out, "Wrote template %s\n", f)
	}
	if err := os.MkdirAll(cfg.PostsDir(), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create posts directory").
			Fatal().WithContext("path", cfg.PostsDir()).Build()
	}
	return nil
}
