// Package controller orchestrates the dashboard: it owns the refresh timer,
// binds form submissions to the remote gateway, and routes every fetched
// payload to the one render target it owns.
//
// All state transitions and renders run on a single event loop goroutine.
// Remote calls execute off the loop and post their continuation back, so
// handlers for distinct triggers never interleave while the relative
// completion order of outstanding calls stays unconstrained.
package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"triageboard/internal/charts"
	"triageboard/internal/gateway"
	"triageboard/internal/models"
	"triageboard/internal/notify"
	"triageboard/internal/surface"
	"triageboard/internal/utils"
	"triageboard/internal/view"
)

// Gateway is the remote capability surface the controller fetches through.
type Gateway interface {
	Stats(ctx context.Context) (models.StatsSnapshot, error)
	Queue(ctx context.Context) ([]models.ScoredPatient, error)
	SubmitRecord(ctx context.Context, rec models.VitalRecord) (models.Prediction, error)
	RunSimulation(ctx context.Context, algorithm string) (models.SimulationRun, error)
	SimulationHistory(ctx context.Context) (map[string]models.SimulationRun, error)
	ClearData(ctx context.Context) error
}

// FormControl manipulates the patient-entry form on the rendering side.
// A nil FormControl is tolerated.
type FormControl interface {
	ResetForm()
	FillForm(models.VitalRecord)
}

// Config carries the controller's timing knobs.
type Config struct {
	RefreshInterval time.Duration // dashboard auto-refresh period
	ReloadDelay     time.Duration // post-submit dashboard reload delay
	EventQueueSize  int
}

func (c Config) withDefaults() Config {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 30 * time.Second
	}
	if c.ReloadDelay <= 0 {
		c.ReloadDelay = time.Second
	}
	if c.EventQueueSize <= 0 {
		c.EventQueueSize = 64
	}
	return c
}

// Deps are the collaborators the controller composes.
type Deps struct {
	Views    *view.Router
	Charts   *charts.Adapter
	Notes    *notify.Service
	Surfaces *surface.Registry
	Form     FormControl
	Log      *utils.Logger
}

// Controller is the top-level orchestrator. Construct one per process with
// New and drive it with Run.
type Controller struct {
	gw  Gateway
	d   Deps
	cfg Config

	events   chan func()
	stopped  chan struct{}
	stopOnce sync.Once
	inflight sync.WaitGroup

	// lastIssued tracks the newest fetch per render target so a superseded
	// continuation can discard itself (last-issued-wins). Touched only on
	// the loop goroutine.
	lastIssued map[string]uint64
}

// New composes the controller and binds the section load actions.
func New(gw Gateway, d Deps, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		gw:         gw,
		d:          d,
		cfg:        cfg,
		events:     make(chan func(), cfg.EventQueueSize),
		stopped:    make(chan struct{}),
		lastIssued: make(map[string]uint64),
	}
	if d.Views != nil {
		d.Views.BindLoad(view.SectionDashboard, c.loadDashboard)
		d.Views.BindLoad(view.SectionQueue, c.loadQueue)
		d.Views.BindLoad(view.SectionSimulation, c.loadSimulationHistory)
	}
	return c
}

// Run activates the dashboard once, then serves the event loop and the
// refresh ticker until ctx is cancelled. The ticker always fires; a tick is
// a no-op unless the dashboard is the active section.
func (c *Controller) Run(ctx context.Context) {
	defer c.stopOnce.Do(func() { close(c.stopped) })

	c.d.Views.Activate(view.SectionDashboard)

	ticker := time.NewTicker(c.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.handleTick()
		case ev := <-c.events:
			ev()
		}
	}
}

// post enqueues an event for the loop. Events arriving after shutdown are
// dropped.
func (c *Controller) post(ev func()) {
	if ev == nil {
		return
	}
	select {
	case c.events <- ev:
	case <-c.stopped:
	}
}

// spawn executes fetch off the loop and posts the returned continuation
// back onto it.
func (c *Controller) spawn(fetch func() func()) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if cont := fetch(); cont != nil {
			c.post(cont)
		}
	}()
}

func (c *Controller) issue(target string) uint64 {
	c.lastIssued[target]++
	return c.lastIssued[target]
}

func (c *Controller) latest(target string) uint64 {
	return c.lastIssued[target]
}

func (c *Controller) handleTick() {
	if c.d.Views.Current() == view.SectionDashboard {
		c.loadDashboard()
	}
}

// Navigate requests activation of a section. Unknown sections are ignored.
func (c *Controller) Navigate(section string) {
	c.post(func() { c.d.Views.Activate(view.Section(section)) })
}

// SubmitPatientForm parses, validates, and submits operator-entered vitals.
func (c *Controller) SubmitPatientForm(in FormInput) {
	c.post(func() { c.submitPatient(in) })
}

// TriggerSimulation runs one queueing-discipline simulation.
func (c *Controller) TriggerSimulation(algorithm string) {
	c.post(func() { c.runSimulation(algorithm) })
}

// ApplyPreset fills the entry form with one of the canned example records.
func (c *Controller) ApplyPreset(name string) {
	c.post(func() {
		rec, ok := models.Presets[name]
		if !ok {
			return
		}
		if c.d.Form != nil {
			c.d.Form.FillForm(rec)
		}
		c.surface(surfacePainValue).SetText(strconv.Itoa(rec.PainLevel))
	})
}

// SetPainReadout mirrors the pain-level slider into its live readout.
func (c *Controller) SetPainReadout(value string) {
	c.post(func() { c.surface(surfacePainValue).SetText(value) })
}

// RefreshQueue reloads the patient queue on explicit operator request.
func (c *Controller) RefreshQueue() {
	c.post(func() {
		c.loadQueue()
		c.d.Notes.Success("Queue refreshed!")
	})
}

// ClearAllData wipes all remote patient and simulation state, then reloads
// the dashboard and the queue.
func (c *Controller) ClearAllData() {
	c.post(func() {
		c.spawn(func() func() {
			err := c.gw.ClearData(context.Background())
			return func() {
				if err != nil {
					c.d.Log.Writef("clear data failed: %v", err)
					c.d.Notes.Error("Error clearing data")
					return
				}
				c.d.Notes.Success("All data cleared!")
				c.loadDashboard()
				c.loadQueue()
			}
		})
	})
}

func (c *Controller) loadDashboard() {
	ticket := c.issue(targetDashboard)
	c.spawn(func() func() {
		snap, err := c.gw.Stats(context.Background())
		return func() {
			if ticket != c.latest(targetDashboard) {
				return
			}
			if err != nil {
				c.d.Log.Writef("dashboard load failed: %v", err)
				c.d.Notes.Error("Error loading dashboard")
				c.renderStatsError()
				return
			}
			c.renderStats(snap)
		}
	})
	c.sampleStationHealth()
}

func (c *Controller) loadQueue() {
	ticket := c.issue(targetQueue)
	c.spawn(func() func() {
		patients, err := c.gw.Queue(context.Background())
		return func() {
			if ticket != c.latest(targetQueue) {
				return
			}
			if err != nil {
				c.d.Log.Writef("queue load failed: %v", err)
				c.d.Notes.Error("Error loading patient queue")
				c.renderQueueError()
				return
			}
			c.renderQueue(patients)
		}
	})
}

func (c *Controller) loadSimulationHistory() {
	ticket := c.issue(targetHistory)
	c.spawn(func() func() {
		history, err := c.gw.SimulationHistory(context.Background())
		return func() {
			if ticket != c.latest(targetHistory) {
				return
			}
			if err != nil {
				c.d.Log.Writef("simulation history load failed: %v", err)
				c.d.Notes.Error("Error loading simulation results")
				return
			}
			c.d.Charts.UpdateComparisonChart(history)
		}
	})
}

func (c *Controller) submitPatient(in FormInput) {
	rec, err := parseVitals(in)
	if err != nil {
		c.d.Notes.Error("Invalid vitals: " + err.Error())
		return
	}
	ticket := c.issue(targetPrediction)
	c.spawn(func() func() {
		pred, err := c.gw.SubmitRecord(context.Background(), rec)
		return func() {
			if ticket != c.latest(targetPrediction) {
				return
			}
			if err != nil {
				var apiErr *gateway.APIError
				if errors.As(err, &apiErr) && apiErr.Message != "" {
					c.d.Notes.Error("Error adding patient: " + apiErr.Message)
				} else {
					c.d.Log.Writef("submit failed: %v", err)
					c.d.Notes.Error("Error adding patient. Please try again.")
				}
				return
			}
			c.renderPrediction(pred)
			c.d.Notes.Success("Patient added successfully!")
			c.resetForm()
			if c.d.Views.Current() == view.SectionDashboard {
				// Give the remote service a moment to settle before the
				// dashboard reflects the new record.
				time.AfterFunc(c.cfg.ReloadDelay, func() {
					c.post(c.loadDashboard)
				})
			}
		}
	})
}

func (c *Controller) runSimulation(algorithm string) {
	if !models.KnownAlgorithm(algorithm) {
		c.d.Notes.Error("Unknown scheduling algorithm: " + algorithm)
		return
	}
	c.renderSimulationLoading()
	ticket := c.issue(targetSimulation)
	c.spawn(func() func() {
		run, err := c.gw.RunSimulation(context.Background(), algorithm)
		return func() {
			if ticket != c.latest(targetSimulation) {
				return
			}
			if err != nil {
				c.d.Log.Writef("simulation failed: %v", err)
				c.d.Notes.Error("Simulation failed")
				c.renderSimulationError()
				return
			}
			c.renderSimulationRun(run)
			c.d.Notes.Success(strings.ToUpper(algorithm) + " simulation completed!")
		}
	})
}

func (c *Controller) sampleStationHealth() {
	c.spawn(func() func() {
		sample, err := models.SampleStationTelemetry(context.Background())
		return func() {
			if err != nil {
				c.d.Log.Writef("station telemetry sample failed: %v", err)
				return
			}
			c.renderStationHealth(sample)
		}
	})
}

func (c *Controller) resetForm() {
	if c.d.Form != nil {
		c.d.Form.ResetForm()
	}
	c.surface(surfacePainValue).SetText("1")
}

func (c *Controller) surface(id string) *surface.Target {
	return c.d.Surfaces.Lookup(id)
}
