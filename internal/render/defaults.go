package render

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
)

//go:embed defaults/*
var defaultTemplates embed.FS

// WriteDefaults writes the starter templates into dir. Existing files are
// kept unless force is set. It returns the files written.
func WriteDefaults(dir string, force bool) ([]string, error) {
	entries, err := fs.ReadDir(defaultTemplates, "defaults")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "embedded templates missing").Fatal().Build()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create templates directory").
			Fatal().WithContext("path", dir).Build()
	}

	var written []string
	for _, e := range entries {
		dst := filepath.Join(dir, e.Name())
		if _, err := os.Stat(dst); err == nil && !force {
			continue
		}
		body, err := defaultTemplates.ReadFile("defaults/" + e.Name())
		if err != nil {
			return written, errors.WrapError(err, errors.CategoryInternal, "embedded template unreadable").
				Fatal().WithContext("template", e.Name()).Build()
		}
		if err := os.WriteFile(dst, body, 0o600); err != nil {
			return written, errors.WrapError(err, errors.CategoryFileSystem, "failed to write template").
				Fatal().WithContext("path", dst).Build()
		}
		written = append(written, dst)
	}
	return written, nil
}
