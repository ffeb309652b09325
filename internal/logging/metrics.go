package logging

import (
	"encoding/json"
	"sync"
	"time"
)

// Metrics tracks AWS API calls and high-level operations for one run
type Metrics struct {
	StartTime     time.Time                   `json:"start_time"`
	Duration      string                      `json:"duration"`
	APICalls      map[string]APICallMetrics   `json:"api_calls"`
	Operations    map[string]OperationMetrics `json:"operations"`
	TotalAPICalls int                         `json:"total_api_calls"`
	TotalSuccess  int                         `json:"total_success"`
	TotalFailures int                         `json:"total_failures"`
	mu            sync.RWMutex
}

// APICallMetrics tracks metrics for a specific API call
type APICallMetrics struct {
	Count       int      `json:"count"`
	Success     int      `json:"success"`
	Failures    int      `json:"failures"`
	SuccessRate float64  `json:"success_rate"`
	Errors      []string `json:"errors,omitempty"`
}

// OperationMetrics tracks metrics for high-level operations
type OperationMetrics struct {
	Runs           int           `json:"runs"`
	Duration       time.Duration `json:"duration"`
	Success        bool          `json:"success"`
	Error          string        `json:"error,omitempty"`
	ItemsProcessed int           `json:"items_processed"`
	ItemsFound     int           `json:"items_found"`
}

var globalMetrics *Metrics
var metricsOnce sync.Once

// GetMetrics returns the global metrics instance (singleton)
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics()
	})
	return globalMetrics
}

func newMetrics() *Metrics {
	return &Metrics{
		StartTime:  time.Now(),
		APICalls:   make(map[string]APICallMetrics),
		Operations: make(map[string]OperationMetrics),
	}
}

// RecordAPICall records an API call with success/failure
func (m *Metrics) RecordAPICall(apiName string, success bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalAPICalls++
	if success {
		m.TotalSuccess++
	} else {
		m.TotalFailures++
	}

	metrics := m.APICalls[apiName]
	metrics.Count++
	if success {
		metrics.Success++
	} else {
		metrics.Failures++
		if err != nil && len(metrics.Errors) < 10 {
			metrics.Errors = append(metrics.Errors, err.Error())
		}
	}
	metrics.SuccessRate = float64(metrics.Success) / float64(metrics.Count) * 100
	m.APICalls[apiName] = metrics
}

// RecordOperation records a high-level operation; repeated runs accumulate duration
func (m *Metrics) RecordOperation(operationName string, duration time.Duration, success bool, itemsProcessed, itemsFound int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	opMetrics := m.Operations[operationName]
	opMetrics.Runs++
	opMetrics.Duration += duration
	opMetrics.Success = success
	opMetrics.ItemsProcessed += itemsProcessed
	opMetrics.ItemsFound += itemsFound
	opMetrics.Error = ""
	if err != nil {
		opMetrics.Error = err.Error()
	}
	m.Operations[operationName] = opMetrics
}

// Snapshot returns the metrics as indented JSON
func (m *Metrics) Snapshot() ([]byte, error) {
	m.mu.Lock()
	m.Duration = time.Since(m.StartTime).Round(time.Millisecond).String()
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	return json.MarshalIndent(m, "", "  ")
}
