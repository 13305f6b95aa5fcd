package charts

import (
	"reflect"
	"testing"

	"triageboard/internal/models"
)

type recordingRenderer struct {
	series [][]float64
	calls  int
}

func (r *recordingRenderer) UpdateSeries(series [][]float64) {
	r.series = series
	r.calls++
}

func TestUpdatePriorityChartEmptyDistribution(t *testing.T) {
	chart := &recordingRenderer{}
	a := NewAdapter(chart, nil)

	a.UpdatePriorityChart(map[string]int{})

	want := [][]float64{{0, 0, 0, 0}}
	if !reflect.DeepEqual(chart.series, want) {
		t.Fatalf("expected all-zero series, got %v", chart.series)
	}
}

func TestUpdatePriorityChartFixedOrder(t *testing.T) {
	chart := &recordingRenderer{}
	a := NewAdapter(chart, nil)

	a.UpdatePriorityChart(map[string]int{"CRITICAL": 3, "HIGH": 1})

	want := [][]float64{{3, 1, 0, 0}}
	if !reflect.DeepEqual(chart.series, want) {
		t.Fatalf("expected series [3 1 0 0], got %v", chart.series)
	}
}

func TestUpdateComparisonChartParallelSeries(t *testing.T) {
	chart := &recordingRenderer{}
	a := NewAdapter(nil, chart)

	a.UpdateComparisonChart(map[string]models.SimulationRun{
		"fcfs": {AverageWaitingTime: 12.5, AverageTurnaroundTime: 20},
		"mlfq": {AverageWaitingTime: 4, AverageTurnaroundTime: 9.5},
	})

	want := [][]float64{
		{12.5, 0, 0, 4},
		{20, 0, 0, 9.5},
	}
	if !reflect.DeepEqual(chart.series, want) {
		t.Fatalf("unexpected comparison series: %v", chart.series)
	}
}

func TestMissingChartsAreTolerated(t *testing.T) {
	// Neither chart surface exists: updates must be silent no-ops.
	a := NewAdapter(nil, nil)
	a.UpdatePriorityChart(map[string]int{"CRITICAL": 1})
	a.UpdateComparisonChart(nil)

	var nilAdapter *Adapter
	nilAdapter.UpdatePriorityChart(nil)
}

func TestUpdatesAreIdempotent(t *testing.T) {
	chart := &recordingRenderer{}
	a := NewAdapter(chart, nil)

	dist := map[string]int{"MEDIUM": 7}
	a.UpdatePriorityChart(dist)
	first := chart.series
	a.UpdatePriorityChart(dist)

	if chart.calls != 2 {
		t.Fatalf("expected a redraw per update, got %d", chart.calls)
	}
	if !reflect.DeepEqual(chart.series, first) {
		t.Fatalf("repeated update changed the series: %v vs %v", first, chart.series)
	}
}
