// Package site orchestrates a blog build as a linear list of stages.
package site

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/trakai/internal/config"
	"git.home.luguber.info/inful/trakai/internal/content"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/metrics"
)

// Builder runs site builds for one configuration.
type Builder struct {
	cfg      *config.Config
	logger   *slog.Logger
	recorder metrics.Recorder
	now      func() time.Time
	buildID  string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger; the build id is added to every line.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithClock overrides the clock used for reports and preview backups.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithBuildID fixes the build id instead of generating one.
func WithBuildID(id string) Option {
	return func(b *Builder) { b.buildID = id }
}

// NewBuilder creates a builder for cfg.
func NewBuilder(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Pipeline returns the stages for the builder's configuration.
func (b *Builder) Pipeline() *Pipeline {
	cfg := b.cfg
	return NewPipeline().
		Add(StageLoadTemplates, stageLoadTemplates).
		Add(StagePrepareOutput, stagePrepareOutput).
		Add(StageReadContent, stageReadContent).
		Add(StageRenderPosts, stageRenderPosts).
		Add(StageRenderIndex, stageRenderIndex).
		AddIf(cfg.HasFeed, StageRenderFeed, stageRenderFeed).
		AddIf(cfg.HasArchive, StageRenderArchive, stageRenderArchive).
		AddIf(cfg.HasPreview, StageInsertPreview, stageInsertPreview).
		AddIf(cfg.HasTags, StageRenderTags, stageRenderTags)
}

// Build runs every stage and returns the report. The report is returned
// even when the build fails.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	id := b.buildID
	if id == "" {
		id = uuid.NewString()
	}
	logger := b.logger.With(logfields.BuildID(id))

	bs := &BuildState{
		Config:   b.cfg,
		Logger:   logger,
		Recorder: b.recorder,
		Report:   newReport(id, b.now()),
		Now:      b.now,
	}

	p := b.Pipeline()
	for _, name := range p.Skipped {
		bs.Report.RecordStageResult(name, metrics.ResultSkipped, b.recorder)
	}

	logger.Info("Build starting", logfields.Path(b.cfg.SitePath), slog.Int("stages", len(p.Defs)))
	start := time.Now()
	err := RunStages(ctx, bs, p.Build())

	bs.Report.Finish(b.now())
	bs.Report.DeriveOutcome()
	b.recorder.ObserveBuild(string(bs.Report.Outcome), time.Since(start))

	if err != nil {
		logger.Error("Build failed", slog.String("outcome", string(bs.Report.Outcome)), logfields.Error(err))
		return bs.Report, err
	}
	logger.Info("Build complete", slog.String("summary", bs.Report.Summary()))
	return bs.Report, nil
}

// ReadContent reads the posts directory without writing any output.
func (b *Builder) ReadContent() (*content.ReadResult, error) {
	return content.NewReader(b.cfg, b.logger).ReadDir(b.cfg.PostsDir())
}
