package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prom.Registry) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				byName[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				byName[mf.GetName()] += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				byName[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return byName
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("render_posts", 150*time.Millisecond)
	pr.IncStageResult("render_posts", ResultSuccess)
	pr.ObserveBuild("success", 500*time.Millisecond)
	pr.IncPageRendered(PagePost)
	pr.IncPageRendered(PagePost)
	pr.SetContent(2, 3)

	byName := gather(t, reg)
	require.InDelta(t, 2, byName["trakai_pages_rendered_total"], 0)
	require.InDelta(t, 5, byName["trakai_content_items"], 0)
	require.InDelta(t, 1, byName["trakai_build_outcomes_total"], 0)
	require.InDelta(t, 1, byName["trakai_build_duration_seconds"], 0)
	require.InDelta(t, 1, byName["trakai_stage_duration_seconds"], 0)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncPageRendered(PageIndex)
	pr.SetContent(4, 0)

	path := filepath.Join(t.TempDir(), "trakai.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `trakai_pages_rendered_total{kind="index"} 1`)
	require.Contains(t, string(data), `trakai_content_items{item="records"} 4`)
}

func TestWriteTextfile_NilRegistry(t *testing.T) {
	require.Error(t, WriteTextfile(filepath.Join(t.TempDir(), "x.prom"), nil))
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncPageRendered(PagePost)
	pr.SetContent(1, 1)
	pr.ObserveBuild("failed", time.Second)
}
