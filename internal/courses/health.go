package courses

import (
	"strings"
	"sync"
	"time"
)

// HealthMonitor tracks course import success and failure rates
type HealthMonitor struct {
	mu                   sync.RWMutex
	total                int64
	succeeded            int64
	failed               int64
	consecutiveFailures  int64
	lastFailure          time.Time
	lastSuccess          time.Time
	recentFailures       []FailureRecord
	maxRecentFailures    int
	failureThreshold     float64
	consecutiveThreshold int64
	now                  func() time.Time
}

// FailureRecord is a single failed import
type FailureRecord struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Error     string    `json:"error"`
	Kind      string    `json:"kind"`
}

// HealthStatus summarizes recent import outcomes
type HealthStatus struct {
	Healthy             bool            `json:"healthy"`
	Total               int64           `json:"total"`
	Succeeded           int64           `json:"succeeded"`
	Failed              int64           `json:"failed"`
	SuccessRate         float64         `json:"success_rate"`
	ConsecutiveFailures int64           `json:"consecutive_failures"`
	LastFailure         *time.Time      `json:"last_failure,omitempty"`
	LastSuccess         *time.Time      `json:"last_success,omitempty"`
	RecentFailures      []FailureRecord `json:"recent_failures"`
	Issues              []string        `json:"issues"`
}

// NewHealthMonitor creates a monitor keeping the last 20 failures
func NewHealthMonitor() *HealthMonitor {
	return &HealthMonitor{
		maxRecentFailures:    20,
		failureThreshold:     0.5,
		consecutiveThreshold: 3,
		now:                  time.Now,
	}
}

// RecordSuccess records a successful import
func (h *HealthMonitor) RecordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	h.succeeded++
	h.consecutiveFailures = 0
	h.lastSuccess = h.now()
}

// RecordFailure records a failed import of url
func (h *HealthMonitor) RecordFailure(url string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	h.failed++
	h.consecutiveFailures++
	h.lastFailure = h.now()

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	h.recentFailures = append(h.recentFailures, FailureRecord{
		Timestamp: h.lastFailure,
		URL:       url,
		Error:     msg,
		Kind:      categorizeError(msg),
	})
	if len(h.recentFailures) > h.maxRecentFailures {
		h.recentFailures = h.recentFailures[1:]
	}
}

// Status returns the current health summary
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := HealthStatus{
		Healthy:             true,
		Total:               h.total,
		Succeeded:           h.succeeded,
		Failed:              h.failed,
		SuccessRate:         1.0,
		ConsecutiveFailures: h.consecutiveFailures,
		RecentFailures:      make([]FailureRecord, len(h.recentFailures)),
		Issues:              []string{},
	}
	copy(status.RecentFailures, h.recentFailures)

	if h.total > 0 {
		status.SuccessRate = float64(h.succeeded) / float64(h.total)
	}
	if !h.lastFailure.IsZero() {
		t := h.lastFailure
		status.LastFailure = &t
	}
	if !h.lastSuccess.IsZero() {
		t := h.lastSuccess
		status.LastSuccess = &t
	}

	if h.total >= 5 && status.SuccessRate < 1.0-h.failureThreshold {
		status.Healthy = false
		status.Issues = append(status.Issues, "high import failure rate")
	}
	if h.consecutiveFailures >= h.consecutiveThreshold {
		status.Healthy = false
		status.Issues = append(status.Issues, "consecutive import failures")
	}
	if kind := dominantFailure(h.recentFailures); kind != "" {
		status.Issues = append(status.Issues, "mostly "+kind+" errors")
	}

	return status
}

// dominantFailure returns the kind behind more than half of recent failures, if any
func dominantFailure(failures []FailureRecord) string {
	if len(failures) < 3 {
		return ""
	}
	counts := make(map[string]int)
	for _, f := range failures {
		counts[f.Kind]++
	}
	for kind, n := range counts {
		if kind != "other" && n*2 > len(failures) {
			return kind
		}
	}
	return ""
}

func categorizeError(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate"):
		return "rate_limit"
	case strings.Contains(msg, "no par found") || strings.Contains(msg, "parse"):
		return "parse"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "dns") || strings.Contains(msg, "network"):
		return "network"
	default:
		return "other"
	}
}
