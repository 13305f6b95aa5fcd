package controller

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"triageboard/internal/models"
)

// Render regions provided by the page contract.
const (
	surfaceTotalPatients     = "total-patients"
	surfaceCriticalPatients  = "critical-patients"
	surfaceAverageAge        = "average-age"
	surfaceRecentActivity    = "recent-activity"
	surfaceStationHealth     = "station-health"
	surfacePatientQueue      = "patient-queue"
	surfacePredictionResult  = "prediction-result"
	surfaceSimulationResults = "simulation-results"
	surfacePainValue         = "pain-value"
)

// Issue-sequence keys, one per independently fetched render target.
const (
	targetDashboard  = "dashboard"
	targetQueue      = "queue"
	targetHistory    = "history"
	targetSimulation = "simulation"
	targetPrediction = "prediction"
)

// SurfaceIDs lists every render region the dashboard page provides.
func SurfaceIDs() []string {
	return []string{
		surfaceTotalPatients,
		surfaceCriticalPatients,
		surfaceAverageAge,
		surfaceRecentActivity,
		surfaceStationHealth,
		surfacePatientQueue,
		surfacePredictionResult,
		surfaceSimulationResults,
		surfacePainValue,
	}
}

type priorityStyle struct {
	Class string
	Icon  string
}

var priorityStyles = map[string]priorityStyle{
	"critical": {"critical", "fas fa-exclamation-triangle"},
	"high":     {"high", "fas fa-exclamation-circle"},
	"medium":   {"medium", "fas fa-info-circle"},
	"low":      {"low", "fas fa-check-circle"},
}

// styleFor resolves the visual class and icon for a priority label,
// defaulting to the medium entry for anything unrecognized.
func styleFor(label string) priorityStyle {
	if s, ok := priorityStyles[strings.ToLower(label)]; ok {
		return s
	}
	return priorityStyles["medium"]
}

var patientCardTmpl = template.Must(template.New("patientCard").Parse(`<div class="card patient-card {{.Class}}">
  <div class="card-body">
    <h6><i class="fas fa-user"></i> Patient {{.PatientID}}</h6>
    <span class="priority-{{.Class}}"><i class="{{.Icon}}"></i> {{.Label}}</span>
    <div class="vital-sign">Age: {{.Age}}y</div>
    <div class="vital-sign">HR: {{.HeartRate}} bpm</div>
    <div class="vital-sign">BP: {{.BPSystolic}}/{{.BPDiastolic}}</div>
    <div class="vital-sign">Temp: {{.Temperature}}&deg;C</div>
    <div class="vital-sign">SpO2: {{.OxygenSaturation}}%</div>
    <div class="vital-sign">Pain: {{.PainLevel}}/10</div>
    <small class="text-muted"><i class="fas fa-clock"></i> Admitted: {{.Admitted}}</small>
  </div>
</div>`))

var predictionTmpl = template.Must(template.New("prediction").Parse(`<div class="prediction-result {{.Class}}">
  <h6><i class="fas fa-robot"></i> Priority Prediction</h6>
  <div class="mb-2"><strong>Priority:</strong> <span class="priority-{{.Class}}">{{.Label}}</span></div>
  <div class="mb-2"><strong>Confidence:</strong> {{.ConfidencePct}}%</div>
  <div><strong>Patient ID:</strong> {{.PatientID}}</div>
  <small class="text-muted mt-2 d-block">{{.Message}}</small>
</div>`))

var simulationTmpl = template.Must(template.New("simulation").Parse(`<h6><i class="fas fa-chart-line"></i> {{.Algorithm}} Results</h6>
<div class="simulation-metric"><h4>{{.Waiting}}</h4><p>Average Waiting Time (min)</p></div>
<div class="simulation-metric"><h4>{{.Turnaround}}</h4><p>Average Turnaround Time (min)</p></div>
<div class="simulation-metric"><h4>{{.TotalPatients}}</h4><p>Total Patients Processed</p></div>
<small class="text-muted"><i class="fas fa-clock"></i> Executed: {{.Executed}}</small>`))

var activityTmpl = template.Must(template.New("activity").Parse(`{{range .}}<div class="activity-item">
  <div class="message">{{.Message}}</div>
  <div class="time">{{.Time}}</div>
</div>
{{end}}`))

// Static demonstration feed; the system keeps no historical audit trail.
var recentActivity = []struct {
	Message string
	Time    string
}{
	{"System online and operational", "1 minute ago"},
	{"Scoring model ready for predictions", "2 minutes ago"},
	{"Web interface started", "3 minutes ago"},
}

func (c *Controller) renderStats(s models.StatsSnapshot) {
	c.surface(surfaceTotalPatients).SetText(strconv.Itoa(s.TotalPatients))
	c.surface(surfaceCriticalPatients).SetText(strconv.Itoa(s.CriticalPatients))
	c.surface(surfaceAverageAge).SetText(strconv.Itoa(int(math.Round(s.AverageAge))))
	c.d.Charts.UpdatePriorityChart(s.PriorityDistribution)
	c.renderRecentActivity()
}

func (c *Controller) renderStatsError() {
	c.surface(surfaceTotalPatients).SetText("--")
	c.surface(surfaceCriticalPatients).SetText("--")
	c.surface(surfaceAverageAge).SetText("--")
}

func (c *Controller) renderRecentActivity() {
	target := c.surface(surfaceRecentActivity)
	if target == nil {
		return
	}
	var buf bytes.Buffer
	if err := activityTmpl.Execute(&buf, recentActivity); err != nil {
		c.d.Log.Writef("activity render failed: %v", err)
		return
	}
	target.SetHTML(buf.String())
}

func (c *Controller) renderQueue(patients []models.ScoredPatient) {
	target := c.surface(surfacePatientQueue)
	if target == nil {
		return
	}
	if len(patients) == 0 {
		target.SetHTML(`<p class="text-muted">No patients in queue</p>`)
		return
	}
	var b strings.Builder
	for _, p := range patients {
		b.WriteString(c.renderPatientCard(p))
	}
	target.SetHTML(b.String())
}

func (c *Controller) renderQueueError() {
	c.surface(surfacePatientQueue).SetHTML(`<p class="text-danger">Error loading patient queue</p>`)
}

// renderPatientCard is a pure function of one scored patient.
func (c *Controller) renderPatientCard(p models.ScoredPatient) string {
	label := p.PriorityLabel
	if label == "" {
		label = models.PriorityMedium
	}
	st := styleFor(label)
	data := struct {
		Class, Icon, Label string
		PatientID          string
		Age                int
		HeartRate          int
		BPSystolic         string
		BPDiastolic        string
		Temperature        string
		OxygenSaturation   int
		PainLevel          int
		Admitted           string
	}{
		Class:            st.Class,
		Icon:             st.Icon,
		Label:            label,
		PatientID:        p.PatientID.String(),
		Age:              p.Age,
		HeartRate:        p.HeartRate,
		BPSystolic:       trimFloat(p.BloodPressureSystolic),
		BPDiastolic:      trimFloat(p.BloodPressureDiastolic),
		Temperature:      trimFloat(p.Temperature),
		OxygenSaturation: p.OxygenSaturation,
		PainLevel:        p.PainLevel,
		Admitted:         formatTimestamp(p.AdmissionTime),
	}
	var buf bytes.Buffer
	if err := patientCardTmpl.Execute(&buf, data); err != nil {
		c.d.Log.Writef("patient card render failed: %v", err)
		return ""
	}
	return buf.String()
}

func (c *Controller) renderPrediction(pred models.Prediction) {
	target := c.surface(surfacePredictionResult)
	if target == nil {
		return
	}
	st := styleFor(pred.PriorityLabel)
	data := struct {
		Class, Label, ConfidencePct, PatientID, Message string
	}{
		Class:         st.Class,
		Label:         pred.PriorityLabel,
		ConfidencePct: fmt.Sprintf("%.1f", pred.Confidence*100),
		PatientID:     pred.PatientID.String(),
		Message:       pred.Message,
	}
	var buf bytes.Buffer
	if err := predictionTmpl.Execute(&buf, data); err != nil {
		c.d.Log.Writef("prediction render failed: %v", err)
		return
	}
	target.SetHTML(buf.String())
}

func (c *Controller) renderSimulationLoading() {
	c.surface(surfaceSimulationResults).SetHTML(`<div class="spinner"></div>`)
}

func (c *Controller) renderSimulationError() {
	c.surface(surfaceSimulationResults).SetHTML(`<p class="text-danger">Error running simulation</p>`)
}

func (c *Controller) renderSimulationRun(run models.SimulationRun) {
	target := c.surface(surfaceSimulationResults)
	if target == nil {
		return
	}
	data := struct {
		Algorithm, Waiting, Turnaround, Executed string
		TotalPatients                            int
	}{
		Algorithm:     run.Algorithm,
		Waiting:       trimFloat(run.AverageWaitingTime),
		Turnaround:    trimFloat(run.AverageTurnaroundTime),
		Executed:      formatTimestamp(run.ExecutedAt),
		TotalPatients: run.TotalPatients,
	}
	var buf bytes.Buffer
	if err := simulationTmpl.Execute(&buf, data); err != nil {
		c.d.Log.Writef("simulation render failed: %v", err)
		return
	}
	target.SetHTML(buf.String())
}

func (c *Controller) renderStationHealth(sample *models.StationTelemetry) {
	if sample == nil {
		return
	}
	c.surface(surfaceStationHealth).SetText(fmt.Sprintf(
		"Station: CPU %.0f%% | Memory %.0f%% (%s of %s)",
		sample.CPUPercent, sample.MemoryPercent,
		formatBytes(sample.MemoryUsed), formatBytes(sample.MemoryTotal)))
}

// trimFloat renders a float without trailing zeros (130, 37.2, 12.5).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// Timestamp layouts the remote service is known to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// formatTimestamp normalizes a service timestamp for display, passing the
// raw value through when it matches no known layout.
func formatTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("2006-01-02 15:04:05")
		}
	}
	return raw
}
