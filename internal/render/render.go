// Package render executes the site templates.
//
// Every file in the templates directory is parsed into a single
// text/template set named by its slash-separated path relative to that
// directory. Output is not escaped: content and templates are authored by
// the site owner.
package render

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/logfields"
)

// Names of the templates the site build executes.
const (
	TemplatePost    = "post.html"
	TemplateList    = "list.html"
	TemplateFeed    = "feed.xml"
	TemplateExcerpt = "excerpt.html"
)

// Renderer renders PageData through a parsed template set.
type Renderer struct {
	dir    string
	site   SiteParams
	set    *template.Template
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for progress lines.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New parses every template under dir. site provides the values behind the
// tagPath helper.
func New(dir string, site SiteParams, opts ...Option) (*Renderer, error) {
	r := &Renderer{dir: dir, site: site, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		b := errors.TemplateError("templates directory not found").WithContext("path", dir)
		if err != nil {
			b = b.WithCause(err)
		}
		return nil, b.Build()
	}

	set := template.New("").Funcs(r.funcs())
	count := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		// #nosec G304 -- path is under the configured templates directory.
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := set.New(filepath.ToSlash(rel)).Parse(string(src)); err != nil {
			return errors.WrapError(err, errors.CategoryTemplate, "failed to parse template").
				Fatal().WithContext("template", filepath.ToSlash(rel)).Build()
		}
		count++
		return nil
	})
	if err != nil {
		if errors.IsClassified(err) {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryTemplate, "failed to load templates").
			Fatal().WithContext("path", dir).Build()
	}

	r.set = set
	r.logger.Debug("Loaded templates", logfields.Path(dir), slog.Int("count", count))
	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"lower":   strings.ToLower,
		"join":    func(sep string, items []string) string { return strings.Join(items, sep) },
		"tagPath": r.site.TagPath,
		"year":    func() int { return r.site.CurrentYear },
		"inc":     func(i int) int { return i + 1 },
	}
}

// Has reports whether a template named name was loaded.
func (r *Renderer) Has(name string) bool {
	return r.set.Lookup(name) != nil
}

// RenderString executes the named template and returns its output.
func (r *Renderer) RenderString(name string, data PageData) (string, error) {
	t := r.set.Lookup(name)
	if t == nil {
		return "", errors.TemplateError("template not found").
			WithContext("template", name).WithContext("path", r.dir).Build()
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.WrapError(err, errors.CategoryTemplate, "failed to execute template").
			Fatal().WithContext("template", name).Build()
	}
	return buf.String(), nil
}

// RenderToFile executes the named template into dst, creating parent
// directories as needed.
func (r *Renderer) RenderToFile(name, dst string, data PageData) error {
	out, err := r.RenderString(name, data)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return ce.WithContext("path", dst)
		}
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			Fatal().WithContext("path", filepath.Dir(dst)).Build()
	}
	// #nosec G306 -- generated pages are served to readers.
	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write page").
			Fatal().WithContext("path", dst).Build()
	}
	r.logger.Info("Rendered page", logfields.Template(name), logfields.Path(dst))
	return nil
}
