package cheqprint_models

import "time"

// EgressLog records a single call made during a run
type EgressLog struct {
	RequestID  string
	HTTPMethod string
	Endpoint   string
	StatusCode int
	Success    bool
	BeginAt    time.Time
	EndAt      time.Time
}

func (l EgressLog) Latency() time.Duration {
	if l.EndAt.IsZero() {
		return 0
	}
	return l.EndAt.Sub(l.BeginAt)
}

// RunSummary aggregates the egress logs of a run
type RunSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}
