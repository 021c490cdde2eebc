package site

import (
	"context"
	"path"
	"path/filepath"
	"strconv"

	"git.home.luguber.info/inful/trakai/internal/content"
	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/metrics"
	"git.home.luguber.info/inful/trakai/internal/paginate"
	"git.home.luguber.info/inful/trakai/internal/render"
)

// listJob describes one list, single page or paginated.
type listJob struct {
	records  []*content.Record
	template string
	kind     metrics.PageKind
	mode     string
	tag      string
	// file is the single page, relative to the output directory.
	file string
	// dir holds the pages when paginated.
	dir       string
	paginated bool
}

func renderList(bs *BuildState, ls listJob) error {
	out := bs.Config.OutputDir()

	if !ls.paginated {
		url := bs.Config.URLPath(ls.file)
		data := render.PageData{
			Site:       bs.Site,
			Name:       "blogindex",
			Path:       url,
			PageMode:   ls.mode,
			Posts:      ls.records,
			PageNum:    1,
			PageCount:  1,
			Pages:      []string{url},
			CurrentTag: ls.tag,
		}
		dst := filepath.Join(out, filepath.FromSlash(ls.file))
		if err := bs.Renderer.RenderToFile(ls.template, dst, data); err != nil {
			return err
		}
		bs.Report.AddPage(ls.kind, dst)
		bs.Recorder.IncPageRendered(ls.kind)
		return nil
	}

	pages := paginate.Paginate(ls.records, bs.Config.PageLimit, ls.dir)
	urls := make([]string, 0, len(pages))
	if len(pages) > 0 {
		for _, f := range pages[0].Files {
			urls = append(urls, bs.Config.URLPath(f))
		}
	}
	for i, p := range pages {
		data := render.PageData{
			Site:       bs.Site,
			Name:       "blogindex" + strconv.Itoa(p.Number),
			Path:       urls[i],
			PageMode:   ls.mode,
			Posts:      p.Records,
			PageNum:    p.Number,
			PageCount:  p.Count(),
			Pages:      urls,
			CurrentTag: ls.tag,
		}
		dst := filepath.Join(out, filepath.FromSlash(p.File))
		if err := bs.Renderer.RenderToFile(ls.template, dst, data); err != nil {
			return err
		}
		bs.Report.AddPage(ls.kind, dst)
		bs.Recorder.IncPageRendered(ls.kind)
	}
	bs.Logger.Debug("Rendered paginated list", logfields.Path(ls.dir), logfields.Pages(len(pages)))
	return nil
}

func stageRenderIndex(_ context.Context, bs *BuildState) error {
	return renderList(bs, listJob{
		records:   bs.Records,
		template:  render.TemplateList,
		kind:      metrics.PageIndex,
		mode:      render.ModeRegular,
		file:      "index.html",
		dir:       "",
		paginated: bs.Config.HasPagination,
	})
}

func stageRenderFeed(_ context.Context, bs *BuildState) error {
	return renderList(bs, listJob{
		records:  bs.Records,
		template: render.TemplateFeed,
		kind:     metrics.PageFeed,
		mode:     render.ModeFeed,
		file:     "feed.xml",
	})
}

func stageRenderArchive(_ context.Context, bs *BuildState) error {
	return renderList(bs, listJob{
		records:  bs.Records,
		template: render.TemplateList,
		kind:     metrics.PageArchive,
		mode:     render.ModeArchive,
		file:     "archive.html",
	})
}

func stageRenderTags(ctx context.Context, bs *BuildState) error {
	idx := paginate.BuildTagIndex(bs.Records, bs.Tags)
	for _, label := range idx.Labels() {
		if err := ctx.Err(); err != nil {
			return NewCanceledStageError(StageRenderTags, err)
		}
		slug := paginate.Slug(label)
		err := renderList(bs, listJob{
			records:   idx[label],
			template:  render.TemplateList,
			kind:      metrics.PageTag,
			mode:      render.ModeTags,
			tag:       label,
			file:      path.Join("tags", slug+".html"),
			dir:       path.Join("tags", slug),
			paginated: bs.Config.HasTagPagination,
		})
		if err != nil {
			return err
		}
		bs.Logger.Debug("Rendered tag", logfields.Tag(label), logfields.Records(len(idx[label])))
	}
	return nil
}
