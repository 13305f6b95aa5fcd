// Package charts maps domain data onto the two dashboard charts. The drawing
// capability itself is opaque: a Renderer accepts replacement series and
// redraws. Updates are idempotent and never fail; missing keys degrade to
// zero and a missing chart is skipped, not an error.
package charts

import "triageboard/internal/models"

// Renderer is an opaque chart instance that redraws when handed a full
// replacement set of numeric series.
type Renderer interface {
	UpdateSeries(series [][]float64)
}

// Adapter wraps the priority-distribution and algorithm-comparison charts.
// Either chart may be absent when its rendering surface does not exist.
type Adapter struct {
	priority   Renderer
	comparison Renderer
}

// NewAdapter creates an adapter over the two chart instances. Nil renderers
// are tolerated.
func NewAdapter(priority, comparison Renderer) *Adapter {
	return &Adapter{priority: priority, comparison: comparison}
}

// UpdatePriorityChart maps the label→count distribution into a single series
// in the fixed CRITICAL/HIGH/MEDIUM/LOW order, zero-filling missing labels.
func (a *Adapter) UpdatePriorityChart(distribution map[string]int) {
	if a == nil || a.priority == nil {
		return
	}
	series := make([]float64, len(models.PriorityOrder))
	for i, label := range models.PriorityOrder {
		series[i] = float64(distribution[label])
	}
	a.priority.UpdateSeries([][]float64{series})
}

// UpdateComparisonChart maps the algorithm→run history into two parallel
// series (waiting time, turnaround time) in the fixed fcfs/priority/
// round_robin/mlfq order, zero-filling missing algorithms.
func (a *Adapter) UpdateComparisonChart(history map[string]models.SimulationRun) {
	if a == nil || a.comparison == nil {
		return
	}
	waiting := make([]float64, len(models.AlgorithmOrder))
	turnaround := make([]float64, len(models.AlgorithmOrder))
	for i, alg := range models.AlgorithmOrder {
		if run, ok := history[alg]; ok {
			waiting[i] = run.AverageWaitingTime
			turnaround[i] = run.AverageTurnaroundTime
		}
	}
	a.comparison.UpdateSeries([][]float64{waiting, turnaround})
}
