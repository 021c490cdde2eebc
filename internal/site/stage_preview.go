package site

import (
	"context"

	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/metrics"
	"git.home.luguber.info/inful/trakai/internal/render"
	"git.home.luguber.info/inful/trakai/internal/splice"
)

func stageInsertPreview(_ context.Context, bs *BuildState) error {
	target := bs.Config.PreviewTargetFile()
	if len(bs.Records) == 0 {
		bs.Logger.Warn("No posts to preview, skipping preview insertion", logfields.Path(target))
		bs.Report.AddWarning("preview skipped: no posts")
		return nil
	}

	newest := bs.Records[0]
	block, err := bs.Renderer.RenderString(render.TemplateExcerpt, render.PageData{
		Site:     bs.Site,
		Name:     newest.Name,
		Path:     newest.Path,
		PageMode: render.ModePost,
		Post:     newest,
	})
	if err != nil {
		return err
	}

	ins := &splice.Inserter{Class: bs.Config.PreviewClass, Now: bs.Now, Logger: bs.Logger}
	backup, err := ins.InsertPreview(target, bs.Config.BackupDir(), block)
	if err != nil {
		if errors.IsClassified(err) {
			return err
		}
		return errors.WrapError(err, errors.CategoryBuild, "preview insertion failed").
			Fatal().WithContext("path", target).Build()
	}
	bs.Report.PreviewBackup = backup
	bs.Report.AddPage(metrics.PagePreview, target)
	bs.Recorder.IncPageRendered(metrics.PagePreview)
	return nil
}
