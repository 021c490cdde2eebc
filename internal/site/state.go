package site

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/trakai/internal/config"
	"git.home.luguber.info/inful/trakai/internal/content"
	"git.home.luguber.info/inful/trakai/internal/metrics"
	"git.home.luguber.info/inful/trakai/internal/render"
)

// BuildState carries the data flowing between stages of one build.
type BuildState struct {
	Config   *config.Config
	Logger   *slog.Logger
	Recorder metrics.Recorder
	Report   *Report
	Now      func() time.Time

	Renderer *render.Renderer
	// Site is set by the read stage once the tag set is known.
	Site render.SiteParams

	// Records are sorted newest first.
	Records []*content.Record
	Tags    []string
}
