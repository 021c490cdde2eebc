package site

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/trakai/internal/metrics"
	"git.home.luguber.info/inful/trakai/internal/version"
)

// BuildOutcome is the final state of a build.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// Report summarizes one build.
type Report struct {
	BuildID string
	Version string
	Start   time.Time
	End     time.Time

	Records int
	Tags    int
	// Pages are the files written, in write order.
	Pages []string
	// PagesByKind counts written pages per kind (post, index, feed, archive, tag, preview).
	PagesByKind map[metrics.PageKind]int
	// PreviewBackup is the backup written by the preview splice, if any.
	PreviewBackup string

	StageDurations map[string]time.Duration
	StageResults   map[StageName]metrics.ResultLabel

	Errors   []error
	Warnings []string
	Outcome  BuildOutcome
}

func newReport(buildID string, start time.Time) *Report {
	return &Report{
		BuildID:        buildID,
		Version:        version.Version,
		Start:          start,
		PagesByKind:    map[metrics.PageKind]int{},
		StageDurations: map[string]time.Duration{},
		StageResults:   map[StageName]metrics.ResultLabel{},
	}
}

// RecordStageResult stores the stage result and forwards it to the recorder.
func (r *Report) RecordStageResult(stage StageName, result metrics.ResultLabel, recorder metrics.Recorder) {
	r.StageResults[stage] = result
	if recorder != nil {
		recorder.IncStageResult(string(stage), result)
	}
}

// AddPage records a written page.
func (r *Report) AddPage(kind metrics.PageKind, path string) {
	r.Pages = append(r.Pages, path)
	r.PagesByKind[kind]++
}

// AddWarning records a non-fatal condition.
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// DeriveOutcome sets Outcome from the recorded errors and warnings.
func (r *Report) DeriveOutcome() {
	switch {
	case len(r.Errors) > 0:
		r.Outcome = OutcomeFailed
		for _, err := range r.Errors {
			if se, ok := err.(*StageError); ok && se.Kind == StageErrorCanceled {
				r.Outcome = OutcomeCanceled
			}
		}
	case len(r.Warnings) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

// Finish stamps the end time.
func (r *Report) Finish(end time.Time) {
	r.End = end
}

// Duration is the wall time of the build.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// Summary is a one-line human readable description.
func (r *Report) Summary() string {
	kinds := make([]string, 0, len(r.PagesByKind))
	for k := range r.PagesByKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.PagesByKind[metrics.PageKind(k)]))
	}
	return fmt.Sprintf("outcome=%s records=%d tags=%d pages=%d [%s] warnings=%d duration=%s",
		r.Outcome, r.Records, r.Tags, len(r.Pages), strings.Join(parts, " "), len(r.Warnings),
		r.Duration().Round(time.Millisecond))
}
