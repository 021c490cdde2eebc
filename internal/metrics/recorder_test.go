package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRecorder struct {
	NoopRecorder
	pages    map[PageKind]int
	outcomes []string
}

func (c *countingRecorder) IncPageRendered(kind PageKind) { c.pages[kind]++ }
func (c *countingRecorder) ObserveBuild(outcome string, _ time.Duration) {
	c.outcomes = append(c.outcomes, outcome)
}

func TestRecorderEmbedding(t *testing.T) {
	c := &countingRecorder{pages: map[PageKind]int{}}
	var r Recorder = c
	r.IncPageRendered(PageTag)
	r.IncPageRendered(PageTag)
	r.IncStageResult("read_content", ResultSuccess)
	r.ObserveBuild("warning", time.Second)

	assert.Equal(t, map[PageKind]int{PageTag: 2}, c.pages)
	assert.Equal(t, []string{"warning"}, c.outcomes)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStageDuration("x", time.Second)
	r.ObserveBuild("success", time.Second)
	r.SetContent(3, 1)
}
