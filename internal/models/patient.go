package models

import "encoding/json"

// Priority labels assigned by the remote scoring service.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

// PriorityOrder is the fixed display order for priority-keyed series.
var PriorityOrder = []string{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Queueing disciplines the simulation engine can compare.
const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmPriority   = "priority"
	AlgorithmRoundRobin = "round_robin"
	AlgorithmMLFQ       = "mlfq"
)

// AlgorithmOrder is the fixed display order for algorithm-keyed series.
var AlgorithmOrder = []string{AlgorithmFCFS, AlgorithmPriority, AlgorithmRoundRobin, AlgorithmMLFQ}

// KnownAlgorithm reports whether name is one of the supported disciplines.
func KnownAlgorithm(name string) bool {
	for _, a := range AlgorithmOrder {
		if a == name {
			return true
		}
	}
	return false
}

// ScoredPatient is a queued patient as returned by the remote service: the
// submitted vitals plus the assigned score. Immutable once received; the
// active set is replaced wholesale on every queue reload.
type ScoredPatient struct {
	VitalRecord
	PatientID     json.Number `json:"patient_id"`
	PriorityLabel string      `json:"priority_label"`
	Confidence    float64     `json:"confidence"`
	AdmissionTime string      `json:"admission_time"`
}

// Prediction is the scoring result returned for a submitted record.
type Prediction struct {
	PatientID     json.Number `json:"patient_id"`
	PriorityLabel string      `json:"priority_label"`
	Confidence    float64     `json:"confidence"`
	Message       string      `json:"message"`
}

// StatsSnapshot is the aggregate dashboard view of the queue. Each poll
// replaces the prior snapshot wholesale; no history is retained.
type StatsSnapshot struct {
	TotalPatients        int            `json:"total_patients"`
	CriticalPatients     int            `json:"critical_patients"`
	AverageAge           float64        `json:"average_age"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
}

// SimulationRun is the aggregate outcome of one queueing-discipline run.
type SimulationRun struct {
	Algorithm             string  `json:"algorithm"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	TotalPatients         int     `json:"total_patients"`
	ExecutedAt            string  `json:"executed_at"`
}
