package main

import (
	"triageboard/internal/charts"
	"triageboard/internal/middleware"
	"triageboard/internal/models"
	"triageboard/internal/notify"
	"triageboard/internal/view"
)

// hubBridge translates controller-side updates into the JSON events browsers
// mirror. One bridge serves every concern: surfaces, sections, notifications,
// form control, and the two charts.
type hubBridge struct {
	hub *middleware.Hub
}

func newHubBridge(hub *middleware.Hub) *hubBridge {
	return &hubBridge{hub: hub}
}

// SurfaceUpdated implements surface.Sink.
func (b *hubBridge) SurfaceUpdated(id, html string) {
	b.hub.BroadcastJSON(map[string]interface{}{
		"kind": "surface", "id": id, "html": html,
	})
}

// SectionShown swaps the visible section on every connected browser.
func (b *hubBridge) SectionShown(s view.Section) {
	b.hub.BroadcastJSON(map[string]interface{}{
		"kind": "section", "id": string(s),
	})
}

// ShowNotification implements notify.Presenter.
func (b *hubBridge) ShowNotification(n notify.Notification) {
	b.hub.BroadcastJSON(map[string]interface{}{
		"kind": "notification", "action": "show", "notification": n,
	})
}

// DismissNotification implements notify.Presenter.
func (b *hubBridge) DismissNotification(id uint64) {
	b.hub.BroadcastJSON(map[string]interface{}{
		"kind": "notification", "action": "dismiss", "id": id,
	})
}

// ResetForm implements controller.FormControl.
func (b *hubBridge) ResetForm() {
	b.hub.BroadcastJSON(map[string]interface{}{
		"kind": "form", "action": "reset",
	})
}

// FillForm implements controller.FormControl.
func (b *hubBridge) FillForm(rec models.VitalRecord) {
	b.hub.BroadcastJSON(map[string]interface{}{
		"kind": "form", "action": "fill", "values": rec,
	})
}

// PriorityChart returns the renderer behind the priority-distribution chart.
func (b *hubBridge) PriorityChart() charts.Renderer {
	return &chartRenderer{hub: b.hub, id: "priorityChart", labels: models.PriorityOrder}
}

// ComparisonChart returns the renderer behind the algorithm-comparison chart.
func (b *hubBridge) ComparisonChart() charts.Renderer {
	return &chartRenderer{hub: b.hub, id: "comparisonChart", labels: models.AlgorithmOrder}
}

// chartRenderer pushes replacement series to one named chart; the browser
// side owns the actual drawing.
type chartRenderer struct {
	hub    *middleware.Hub
	id     string
	labels []string
}

func (r *chartRenderer) UpdateSeries(series [][]float64) {
	r.hub.BroadcastJSON(map[string]interface{}{
		"kind": "chart", "id": r.id, "labels": r.labels, "series": series,
	})
}
