package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/logfields"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// SitePath is the root directory relative paths resolve against. Defaults to ".".
	SitePath string
	// File is an explicit configuration file. When empty, DefaultConfigFile under
	// SitePath is used if it exists, and defaults otherwise.
	File string
	// Now overrides the clock used for CurrentYear.
	Now func() time.Time
}

// Load resolves the configuration: defaults, then the optional file with
// ${VAR} references expanded (after loading SitePath/.env when present).
func Load(opts LoadOptions) (*Config, error) {
	sitePath := opts.SitePath
	if sitePath == "" {
		sitePath = "."
	}
	absSite, err := filepath.Abs(sitePath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "cannot resolve site path").
			Fatal().WithContext("path", sitePath).Build()
	}
	if info, statErr := os.Stat(absSite); statErr != nil || !info.IsDir() {
		return nil, errors.ConfigError("site path is not a directory").WithContext("path", absSite).Build()
	}

	if err := loadEnvFile(filepath.Join(absSite, ".env")); err != nil {
		return nil, err
	}

	cfg := Defaults()

	file := opts.File
	explicit := file != ""
	if !explicit {
		file = filepath.Join(absSite, DefaultConfigFile)
	} else if !filepath.IsAbs(file) {
		file = filepath.Join(absSite, file)
	}

	if _, statErr := os.Stat(file); statErr == nil {
		if err := decodeFile(file, cfg); err != nil {
			return nil, err
		}
		cfg.Source = file
	} else if explicit {
		return nil, errors.ConfigError("configuration file not found").WithContext("path", file).Build()
	} else {
		slog.Debug("No configuration file found, using defaults", logfields.Path(file))
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	cfg.SitePath = absSite
	cfg.CurrentYear = now().Year()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(path); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to load .env file").
			Fatal().WithContext("path", path).Build()
	}
	slog.Debug("Loaded environment variables", logfields.Path(path))
	return nil
}

func decodeFile(path string, cfg *Config) error {
	// #nosec G304 -- path is the user-selected configuration file.
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().WithContext("path", path).Build()
	}
	expanded := []byte(os.ExpandEnv(string(data)))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(expanded, cfg)
	default:
		err = json.Unmarshal(expanded, cfg)
	}
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to decode config file").
			Fatal().WithContext("path", path).Build()
	}
	return nil
}

// Validate checks cross-field constraints.
func Validate(cfg *Config) error {
	switch {
	case cfg.PageLimit < 1:
		return errors.ValidationError("page_limit must be at least 1").WithContext("page_limit", cfg.PageLimit).Build()
	case strings.TrimSpace(cfg.PostsPath) == "":
		return errors.ValidationError("posts_path must not be empty").Build()
	case strings.TrimSpace(cfg.TemplatesPath) == "":
		return errors.ValidationError("templates_path must not be empty").Build()
	case strings.TrimSpace(cfg.OutputPath) == "":
		return errors.ValidationError("output_path must not be empty").Build()
	case cfg.HasPreview && strings.TrimSpace(cfg.PreviewClass) == "":
		return errors.ValidationError("preview_class is required when has_preview is enabled").Build()
	case cfg.HasPreview && strings.TrimSpace(cfg.PreviewTarget) == "":
		return errors.ValidationError("preview_target is required when has_preview is enabled").Build()
	}
	return nil
}

// Init writes a configuration file populated with the defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	}

	data, err := json.MarshalIndent(Defaults(), "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode default configuration").Fatal().Build()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create config directory").
			Fatal().WithContext("path", path).Build()
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Fatal().WithContext("path", path).Build()
	}
	return nil
}
