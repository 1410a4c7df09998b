package sim

// Executor is a stand-in model executor: it produces a flat score for
// each class so the pipeline plumbing can run without a model runtime.
type Executor struct {
	Classes int
}

// Invoke implements infer.Executor.
func (e *Executor) Invoke(input []int8) ([]float32, error) {
	n := e.Classes
	if n <= 0 {
		n = 4
	}
	scores := make([]float32, n)
	for i := range scores {
		scores[i] = 1 / float32(n)
	}
	return scores, nil
}
