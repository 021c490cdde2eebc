package content

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/trakai/internal/config"
	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/frontmatter"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/markdown"
)

// Format is the source format of a content file.
type Format int

const (
	FormatUnknown Format = iota
	FormatMarkdown
	FormatHTML
)

// FormatOf classifies a file by extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatUnknown
	}
}

// ReadResult is the outcome of reading the posts directory.
type ReadResult struct {
	// Records are sorted by date, newest first. Equal dates keep directory order.
	Records []*Record
	// Tags is the sorted set of distinct labels; empty unless tags are enabled.
	Tags []string
	// Skipped lists files that were not content.
	Skipped []string
}

// Reader parses content files for one site configuration.
type Reader struct {
	cfg       *config.Config
	converter *markdown.Converter
	// convErr is set when the configured extensions cannot be provided.
	convErr error
	logger  *slog.Logger
}

// NewReader prepares a reader. A Markdown converter that cannot be built is
// not an error here: each Markdown file then falls back to its raw text.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	conv, err := markdown.New(cfg.Extensions())
	return &Reader{cfg: cfg, converter: conv, convErr: err, logger: logger}
}

// ReadFile parses a single content file.
func (r *Reader) ReadFile(path string) (*Record, error) {
	// #nosec G304 -- path comes from the configured posts directory.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read content file").
			Fatal().WithContext("file", path).Build()
	}

	text := string(data)
	body := text
	meta := frontmatter.Fields{}

	switch FormatOf(path) {
	case FormatMarkdown:
		body, meta, err = r.convertMarkdown(path, data)
		if err != nil {
			return nil, err
		}
	case FormatHTML:
		meta, body = frontmatter.ParseHTMLComments(text)
	default:
		return nil, errors.ValidationError("unsupported content file extension").
			WithContext("file", path).Build()
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rec := &Record{
		Name:     name,
		Body:     body,
		Title:    meta["title"],
		Meta:     meta,
		Source:   path,
		Path:     r.cfg.URLPath(filepath.Join("posts", name+".html")),
		PageMode: PageModePost,
	}
	if rec.Title == "" {
		rec.Title = TitleFromName(name)
	}

	rawDate, ok := meta["date"]
	if !ok || strings.TrimSpace(rawDate) == "" {
		return nil, errors.InvalidDateError("content file has no date").WithContext("file", path).Build()
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryDate, "content file date is not YYYY-MM-DD").
			Fatal().WithContext("file", path).WithContext("date", rawDate).Build()
	}
	d := FormatDates(date)
	rec.Date = date
	rec.DateString = d.Date
	rec.NeatDate = d.Neat
	rec.RFC822Date = d.RFC822
	rec.RFC3339Date = d.RFC3339

	if raw, ok := meta["tags"]; ok && r.cfg.HasTags {
		rec.Tags = NormalizeTags(raw)
	}
	if preview, ok := ExtractPreview(body); ok {
		rec.Preview = preview
	}

	return rec, nil
}

// convertMarkdown renders data. Only an undecodable metadata block is an
// error; any other failure falls back to the raw text with no metadata.
func (r *Reader) convertMarkdown(path string, data []byte) (string, frontmatter.Fields, error) {
	var (
		html string
		meta frontmatter.Fields
		err  = r.convErr
	)
	if err == nil {
		html, meta, err = r.converter.Convert(data)
	}
	if stdErrors.Is(err, markdown.ErrFrontMatter) {
		return "", nil, errors.WrapError(err, errors.CategoryFrontMatter, "content file front matter cannot be decoded").
			Fatal().WithContext("file", path).Build()
	}
	if err != nil {
		w := errors.MarkdownError("Cannot render Markdown, using raw text").
			WithCause(err).WithContext(logfields.KeyFile, path).Build()
		r.logger.LogAttrs(context.Background(), slog.LevelWarn, w.Message(), w.LogAttrs()...)
		return string(data), frontmatter.Fields{}, nil
	}
	return html, meta, nil
}

// ReadDir parses every content file in dir. Hidden files and files with
// other extensions are skipped. When two files share a name the later one
// replaces the earlier record in place.
func (r *Reader) ReadDir(dir string) (*ReadResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot read posts directory").
			Fatal().WithContext("path", dir).Build()
	}

	res := &ReadResult{}
	byName := map[string]int{}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		if strings.HasPrefix(name, ".") || !isRegularFile(path, entry) {
			continue
		}
		if FormatOf(path) == FormatUnknown {
			r.logger.Warn("Skipping file with unsupported extension", logfields.File(path))
			res.Skipped = append(res.Skipped, path)
			continue
		}

		rec, err := r.ReadFile(path)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("Read content", logfields.File(path), slog.String("date", rec.DateString))

		if i, dup := byName[rec.Name]; dup {
			r.logger.Warn("Duplicate content name, later file wins",
				logfields.File(path), slog.String("previous", res.Records[i].Source))
			res.Records[i] = rec
			continue
		}
		byName[rec.Name] = len(res.Records)
		res.Records = append(res.Records, rec)
	}

	SortByDate(res.Records)

	if r.cfg.HasTags {
		res.Tags = CollectTags(res.Records)
	}
	return res, nil
}

func isRegularFile(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// SortByDate orders records newest first, keeping the relative order of
// records with equal dates.
func SortByDate(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}

// CollectTags returns the sorted distinct tag labels of records.
func CollectTags(records []*Record) []string {
	seen := map[string]struct{}{}
	tags := []string{}
	for _, rec := range records {
		for _, t := range rec.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}
