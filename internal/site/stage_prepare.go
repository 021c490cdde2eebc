package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/render"
)

func stageLoadTemplates(_ context.Context, bs *BuildState) error {
	r, err := render.New(bs.Config.TemplatesDir(), render.NewSiteParams(bs.Config, nil), render.WithLogger(bs.Logger))
	if err != nil {
		return err
	}
	for _, name := range requiredTemplates(bs) {
		if !r.Has(name) {
			return errors.TemplateError("required template is missing").
				WithContext("template", name).WithContext("path", bs.Config.TemplatesDir()).Build()
		}
	}
	bs.Renderer = r
	return nil
}

func requiredTemplates(bs *BuildState) []string {
	names := []string{render.TemplatePost, render.TemplateList}
	if bs.Config.HasFeed {
		names = append(names, render.TemplateFeed)
	}
	if bs.Config.HasPreview {
		names = append(names, render.TemplateExcerpt)
	}
	return names
}

func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	out := bs.Config.OutputDir()
	if err := checkOutputDir(bs, out); err != nil {
		return err
	}

	if err := os.RemoveAll(out); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to remove output directory").
			Fatal().WithContext("path", out).Build()
	}
	if err := os.MkdirAll(out, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			Fatal().WithContext("path", out).Build()
	}
	bs.Logger.Debug("Prepared output directory", logfields.Path(out))
	return nil
}

// checkOutputDir refuses output directories whose removal would delete the
// site or its inputs.
func checkOutputDir(bs *BuildState, out string) error {
	protected := map[string]string{
		"site_path":      bs.Config.SitePath,
		"posts_path":     bs.Config.PostsDir(),
		"templates_path": bs.Config.TemplatesDir(),
	}
	for key, p := range protected {
		if p == "" {
			continue
		}
		if within(p, out) {
			return errors.ValidationError("output_path would remove "+key).
				WithContext("output_path", out).WithContext(key, p).Build()
		}
	}
	return nil
}

// within reports whether p equals dir or lies below it.
func within(p, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(p))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
