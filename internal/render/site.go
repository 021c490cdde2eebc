package render

import (
	"strings"

	"git.home.luguber.info/inful/trakai/internal/config"
	"git.home.luguber.info/inful/trakai/internal/content"
	"git.home.luguber.info/inful/trakai/internal/paginate"
)

// Page modes passed to templates.
const (
	ModePost    = content.PageModePost
	ModeRegular = "regular"
	ModeFeed    = "feed"
	ModeArchive = "archive"
	ModeTags    = "tags"
)

// SiteParams are the site-wide values every template sees as .Site.
type SiteParams struct {
	Title           string
	URL             string
	FeedDescription string
	CurrentYear     int
	// Root is the URL path of the output directory with a trailing slash.
	Root string
	// Tags is the sorted set of every tag label in use.
	Tags []string

	HasPagination    bool
	HasTagPagination bool
	HasArchive       bool
	HasTags          bool
	HasFeed          bool
	HasPreview       bool
}

// NewSiteParams derives the template site values from cfg.
func NewSiteParams(cfg *config.Config, tags []string) SiteParams {
	return SiteParams{
		Title:            cfg.BlogTitle,
		URL:              strings.TrimRight(cfg.SiteURL, "/"),
		FeedDescription:  cfg.FeedDescription,
		CurrentYear:      cfg.CurrentYear,
		Root:             strings.TrimSuffix(cfg.URLPath("index.html"), "index.html"),
		Tags:             tags,
		HasPagination:    cfg.HasPagination,
		HasTagPagination: cfg.HasTagPagination,
		HasArchive:       cfg.HasArchive,
		HasTags:          cfg.HasTags,
		HasFeed:          cfg.HasFeed,
		HasPreview:       cfg.HasPreview,
	}
}

// TagPath is the URL path of the first page listing tag.
func (s SiteParams) TagPath(tag string) string {
	if s.HasTagPagination {
		return s.Root + "tags/" + paginate.Slug(tag) + "/index.html"
	}
	return s.Root + "tags/" + paginate.Slug(tag) + ".html"
}

// PageData is the value a template is executed with.
type PageData struct {
	Site SiteParams

	Name     string
	Path     string
	PageMode string

	// Post is set for post pages and the preview excerpt.
	Post *content.Record
	// Posts is set for lists and the feed.
	Posts []*content.Record

	PageNum   int
	PageCount int
	// Pages are the URL paths of every page in a paginated list.
	Pages []string

	CurrentTag string
}
