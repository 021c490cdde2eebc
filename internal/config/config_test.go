package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
)

func fixedNow() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(LoadOptions{SitePath: dir, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, "resources/content", cfg.PostsPath)
	assert.Equal(t, "blog", cfg.OutputPath)
	assert.Equal(t, 5, cfg.PageLimit)
	assert.Equal(t, []string{"def_list", "admonition", "tables"}, cfg.MarkdownExtensions)
	assert.True(t, cfg.HasFeed)
	assert.False(t, cfg.HasPagination)
	assert.Equal(t, 2024, cfg.CurrentYear)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, filepath.Join(dir, "blog"), cfg.OutputDir())
}

func TestLoad_JSONOverridesOnlySpecifiedKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultConfigFile), `{
  "blog_title": "Notes",
  "has_pagination": true,
  "page_limit": 2,
  "markdown_extensions": ["tables"]
}`)

	cfg, err := Load(LoadOptions{SitePath: dir, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, "Notes", cfg.BlogTitle)
	assert.True(t, cfg.HasPagination)
	assert.Equal(t, 2, cfg.PageLimit)
	assert.Equal(t, "resources/templates", cfg.TemplatesPath)
	assert.Equal(t, []string{"tables", MetaExtension}, cfg.Extensions())
	assert.Equal(t, filepath.Join(dir, DefaultConfigFile), cfg.Source)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "trakai.yaml"), "blog_title: From YAML\nhas_tags: true\n")

	cfg, err := Load(LoadOptions{SitePath: dir, File: "trakai.yaml", Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, "From YAML", cfg.BlogTitle)
	assert.True(t, cfg.HasTags)
}

func TestLoad_ExpandsEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "TRAKAI_TEST_SITE_URL=https://blog.example.org\n")
	writeFile(t, filepath.Join(dir, DefaultConfigFile), `{"site_url": "${TRAKAI_TEST_SITE_URL}"}`)
	t.Cleanup(func() { _ = os.Unsetenv("TRAKAI_TEST_SITE_URL") })

	cfg, err := Load(LoadOptions{SitePath: dir, Now: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.org", cfg.SiteURL)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(LoadOptions{SitePath: t.TempDir(), File: "nope.json"})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultConfigFile), `{"page_limit": `)

	_, err := Load(LoadOptions{SitePath: dir})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoad_SitePathMustExist(t *testing.T) {
	_, err := Load(LoadOptions{SitePath: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero page limit", func(c *Config) { c.PageLimit = 0 }, false},
		{"empty posts path", func(c *Config) { c.PostsPath = " " }, false},
		{"empty output path", func(c *Config) { c.OutputPath = "" }, false},
		{"preview without class", func(c *Config) { c.HasPreview = true }, false},
		{"preview with class", func(c *Config) { c.HasPreview = true; c.PreviewClass = "latest" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
		})
	}
}

func TestURLPath(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "/blog/posts/hello.html", cfg.URLPath("posts/hello.html"))
	assert.Equal(t, "/blog/index.html", cfg.URLPath("index.html"))

	cfg.OutputPath = "/var/www/blog"
	assert.Equal(t, "/tags/go.html", cfg.URLPath("tags/go.html"))
}

func TestExtensions_MetaAppendedOnce(t *testing.T) {
	cfg := Defaults()
	cfg.MarkdownExtensions = []string{"meta", "tables"}
	assert.Equal(t, []string{"meta", "tables"}, cfg.Extensions())
	assert.Equal(t, []string{"meta", "tables"}, cfg.MarkdownExtensions)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources", "trakai.json")

	require.NoError(t, Init(path, false))
	err := Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	require.NoError(t, Init(path, true))

	cfg, err := Load(LoadOptions{SitePath: filepath.Dir(filepath.Dir(path))})
	require.NoError(t, err)
	assert.Equal(t, Defaults().BlogTitle, cfg.BlogTitle)
}
