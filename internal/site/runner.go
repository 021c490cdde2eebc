package site

import (
	"context"
	"errors"
	"time"

	"git.home.luguber.info/inful/trakai/internal/logfields"
	"git.home.luguber.info/inful/trakai/internal/metrics"
)

// RunStages executes stages in order, recording timing and stopping on the
// first error. The context is checked before every stage.
func RunStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := NewCanceledStageError(st.Name, ctx.Err())
			bs.Report.RecordStageResult(st.Name, metrics.ResultCanceled, bs.Recorder)
			bs.Report.Errors = append(bs.Report.Errors, se)
			return se
		default:
		}

		bs.Logger.Debug("Stage starting", logfields.Stage(string(st.Name)))
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)

		bs.Report.StageDurations[string(st.Name)] = dur
		bs.Recorder.ObserveStageDuration(string(st.Name), dur)

		if err != nil {
			var se *StageError
			if !errors.As(err, &se) {
				se = NewFatalStageError(st.Name, err)
			}
			result := metrics.ResultFatal
			if se.Kind == StageErrorCanceled {
				result = metrics.ResultCanceled
			}
			bs.Report.RecordStageResult(st.Name, result, bs.Recorder)
			bs.Report.Errors = append(bs.Report.Errors, se)
			bs.Logger.Error("Stage failed", logfields.Stage(string(st.Name)),
				logfields.DurationMS(float64(dur.Microseconds())/1000), logfields.Error(se.Err))
			return se
		}

		bs.Report.RecordStageResult(st.Name, metrics.ResultSuccess, bs.Recorder)
		bs.Logger.Debug("Stage complete", logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}
