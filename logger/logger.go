package cheqprint_logger

import (
	"log/slog"
	"time"

	cpModels "github.com/voxtmault/cheqprint-smoke/models"
)

// RunLog keeps the egress logs of one run in memory, nothing outlives the process.
type RunLog struct {
	logs    []cpModels.EgressLog
	startAt time.Time
}

func NewRunLog() *RunLog {
	return &RunLog{
		startAt: time.Now(),
	}
}

func (l *RunLog) LogRequest(log cpModels.EgressLog) {
	if log.EndAt.IsZero() {
		// Meaning that http request were never sent, skipping
		slog.Debug("end time is zero, no http request is sent. skipping...", "endpoint", log.Endpoint)
		return
	}

	slog.Debug("egress",
		"request_id", log.RequestID,
		"method", log.HTTPMethod,
		"endpoint", log.Endpoint,
		"status", log.StatusCode,
		"latency", log.Latency().String(),
	)
	l.logs = append(l.logs, log)
}

func (l *RunLog) Logs() []cpModels.EgressLog {
	return l.logs
}

func (l *RunLog) Summary() cpModels.RunSummary {
	summary := cpModels.RunSummary{
		Total:   len(l.logs),
		Elapsed: time.Since(l.startAt),
	}

	for _, log := range l.logs {
		if log.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	return summary
}
