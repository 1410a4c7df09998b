// Package infer runs captured buffers through a model executor and
// times each run with the monotonic clock. The executor itself is an
// opaque collaborator: buffer in, scores out.
package infer

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/thermalview/lepton.go/pkg/clock"
)

// Executor invokes the model on a prepared input buffer.
type Executor interface {
	Invoke(input []int8) ([]float32, error)
}

// Result is one inference outcome.
type Result struct {
	Title    string
	Scores   []float32
	Duration time.Duration
}

// String renders the scores row and timing for display.
func (r Result) String() string {
	parts := make([]string, len(r.Scores))
	for i, s := range r.Scores {
		parts[i] = fmt.Sprintf("%f", s)
	}
	return fmt.Sprintf("%s\n[[%s]]\nInference time: %s",
		r.Title, strings.Join(parts, " "), r.Duration)
}

// Pipeline feeds input buffers through the Executor.
type Pipeline struct {
	Executor Executor
	Clock    clock.Source
}

// Run invokes the executor once and reports how long it took.
func (p *Pipeline) Run(title string, input []int8) (Result, error) {
	start := p.Clock.Micros()
	scores, err := p.Executor.Invoke(input)
	if err != nil {
		return Result{}, fmt.Errorf("infer: %w", err)
	}
	res := Result{
		Title:    title,
		Scores:   scores,
		Duration: time.Duration(p.Clock.Micros()-start) * time.Microsecond,
	}
	glog.V(2).Infof("inference %q took %s", title, res.Duration)
	return res, nil
}
