package metrics

import "time"

// ResultLabel is the outcome of one stage.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultSkipped  ResultLabel = "skipped"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// PageKind labels a written output file.
type PageKind string

const (
	PagePost    PageKind = "post"
	PageIndex   PageKind = "index"
	PageFeed    PageKind = "feed"
	PageArchive PageKind = "archive"
	PageTag     PageKind = "tag"
	// PagePreview is the existing page patched by the preview splice.
	PagePreview PageKind = "preview"
)

// Recorder receives build observations. Implementations must tolerate
// stages that are skipped and therefore never timed.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	// ObserveBuild is called once per build with the final outcome
	// (success, warning, failed or canceled).
	ObserveBuild(outcome string, d time.Duration)
	IncPageRendered(kind PageKind)
	SetContent(records, tags int)
}

// NoopRecorder discards everything. It is the default.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveBuild(string, time.Duration)         {}
func (NoopRecorder) IncPageRendered(PageKind)                   {}
func (NoopRecorder) SetContent(int, int)                        {}
