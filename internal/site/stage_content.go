package site

import (
	"context"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/trakai/internal/content"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/metrics"
	"git.home.luguber.info/inful/trakai/internal/render"
)

func stageReadContent(_ context.Context, bs *BuildState) error {
	res, err := content.NewReader(bs.Config, bs.Logger).ReadDir(bs.Config.PostsDir())
	if err != nil {
		return err
	}

	bs.Records = res.Records
	bs.Tags = res.Tags
	bs.Site = render.NewSiteParams(bs.Config, res.Tags)
	bs.Report.Records = len(res.Records)
	bs.Report.Tags = len(res.Tags)
	for _, skipped := range res.Skipped {
		bs.Report.AddWarning("skipped " + skipped)
	}
	bs.Recorder.SetContent(len(res.Records), len(res.Tags))

	bs.Logger.Info("Read content", logfields.Path(bs.Config.PostsDir()),
		logfields.Records(len(res.Records)), slog.Int("tags", len(res.Tags)))
	return nil
}

func stageRenderPosts(ctx context.Context, bs *BuildState) error {
	dir := filepath.Join(bs.Config.OutputDir(), "posts")
	for _, rec := range bs.Records {
		if err := ctx.Err(); err != nil {
			return NewCanceledStageError(StageRenderPosts, err)
		}
		data := render.PageData{
			Site:     bs.Site,
			Name:     rec.Name,
			Path:     rec.Path,
			PageMode: render.ModePost,
			Post:     rec,
		}
		dst := filepath.Join(dir, rec.Name+".html")
		if err := bs.Renderer.RenderToFile(render.TemplatePost, dst, data); err != nil {
			return err
		}
		bs.Report.AddPage(metrics.PagePost, dst)
		bs.Recorder.IncPageRendered(metrics.PagePost)
	}
	return nil
}
