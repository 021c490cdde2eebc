// Package config resolves the site configuration once per run.
//
// The resulting *Config is treated as read-only by every component; it is
// passed explicitly instead of being consulted as shared global state.
package config

import (
	"path/filepath"
	"slices"
)

// MetaExtension is the Markdown metadata extension. It is always enabled.
const MetaExtension = "meta"

// DefaultConfigFile is the configuration file looked up under the site path
// when no explicit file is given.
const DefaultConfigFile = "resources/trakai.json"

// Config represents the blog configuration.
type Config struct {
	PostsPath       string `json:"posts_path" yaml:"posts_path"`
	TemplatesPath   string `json:"templates_path" yaml:"templates_path"`
	BackupPath      string `json:"backup_path" yaml:"backup_path"`
	OutputPath      string `json:"output_path" yaml:"output_path"`
	BlogTitle       string `json:"blog_title" yaml:"blog_title"`
	SiteURL         string `json:"site_url" yaml:"site_url"`
	FeedDescription string `json:"feed_description" yaml:"feed_description"`

	HasPagination    bool `json:"has_pagination" yaml:"has_pagination"`
	HasTagPagination bool `json:"has_tag_pagination" yaml:"has_tag_pagination"`
	PageLimit        int  `json:"page_limit" yaml:"page_limit"`

	MarkdownExtensions []string `json:"markdown_extensions" yaml:"markdown_extensions"`

	HasPreview    bool   `json:"has_preview" yaml:"has_preview"`
	PreviewClass  string `json:"preview_class" yaml:"preview_class"`
	PreviewTarget string `json:"preview_target" yaml:"preview_target"`

	HasArchive bool `json:"has_archive" yaml:"has_archive"`
	HasTags    bool `json:"has_tags" yaml:"has_tags"`
	HasFeed    bool `json:"has_feed" yaml:"has_feed"`

	// Resolved at load time, never read from the file.
	SitePath    string `json:"-" yaml:"-"`
	CurrentYear int    `json:"-" yaml:"-"`
	Source      string `json:"-" yaml:"-"`
}

// Defaults returns a configuration populated with the documented defaults.
func Defaults() *Config {
	return &Config{
		PostsPath:          "resources/content",
		TemplatesPath:      "resources/templates",
		BackupPath:         "resources/backup",
		OutputPath:         "blog",
		BlogTitle:          "Blog",
		SiteURL:            "http://www.example.com",
		FeedDescription:    "Placeholder Description",
		PageLimit:          5,
		MarkdownExtensions: []string{"def_list", "admonition", "tables"},
		PreviewTarget:      "index.html",
		HasFeed:            true,
	}
}

// Resolve returns p joined to the site path when p is relative.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.SitePath == "" {
		return p
	}
	return filepath.Join(c.SitePath, p)
}

// OutputDir is the filesystem location of the generated blog.
func (c *Config) OutputDir() string { return c.Resolve(c.OutputPath) }

// PostsDir is the filesystem location of the content files.
func (c *Config) PostsDir() string { return c.Resolve(c.PostsPath) }

// TemplatesDir is the filesystem location of the templates.
func (c *Config) TemplatesDir() string { return c.Resolve(c.TemplatesPath) }

// BackupDir is where preview splices store the previous page.
func (c *Config) BackupDir() string { return c.Resolve(c.BackupPath) }

// PreviewTargetFile is the existing page patched by the preview splice.
func (c *Config) PreviewTargetFile() string { return c.Resolve(c.PreviewTarget) }

// URLPath maps a path relative to the output directory to the site URL path
// of the generated file, e.g. "posts/a.html" -> "/blog/posts/a.html".
// An absolute output_path is not part of the site, so only rel is used.
func (c *Config) URLPath(rel string) string {
	if c.OutputPath == "" || filepath.IsAbs(c.OutputPath) {
		return "/" + filepath.ToSlash(filepath.Clean(rel))
	}
	return "/" + filepath.ToSlash(filepath.Clean(filepath.Join(c.OutputPath, rel)))
}

// Extensions returns the configured Markdown extensions with the metadata
// extension appended once.
func (c *Config) Extensions() []string {
	exts := slices.Clone(c.MarkdownExtensions)
	if !slices.Contains(exts, MetaExtension) {
		exts = append(exts, MetaExtension)
	}
	return exts
}
